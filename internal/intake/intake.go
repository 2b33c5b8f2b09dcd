// Package intake проверяет загруженный файл изображения до привязки к товару.
package intake

import (
	"strings"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

const (
	// MaxFileSize — лимит размера одного изображения.
	MaxFileSize = 2 << 20
	// MaxRequestSize — грубый входной лимит на весь запрос,
	// применяется до полевой валидации.
	MaxRequestSize = 6 << 20
)

// File описывает загруженный через multipart/form-data файл.
type File struct {
	OriginalName string
	MimeType     string
	Size         int64
	Data         []byte
}

func NewFile(originalName, mimeType string, size int64, data []byte) *File {
	return &File{
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         size,
		Data:         data,
	}
}

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpeg": true,
	"jpg":  true,
}

var allowedMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// Validate проверяет расширение, MIME-тип и размер файла.
// nil-файл валиден: изображение необязательно.
// Каждая ошибка называет файл и нарушенное правило.
func Validate(f *File) error {
	if f == nil {
		return nil
	}

	if !allowedExtensions[extension(f.OriginalName)] {
		return e.Wrap(f.OriginalName, e.ErrBadFileExtension)
	}

	if !allowedMimeTypes[f.MimeType] {
		return e.Wrap(f.OriginalName, e.ErrBadFileMimeType)
	}

	if f.Size > MaxFileSize {
		return e.Wrap(f.OriginalName, e.ErrFileTooLarge)
	}

	return nil
}

// extension возвращает часть имени файла после последней точки (без приведения регистра).
func extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx+1:]
}
