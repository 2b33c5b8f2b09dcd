package domain

import (
	"encoding/base64"
	"fmt"
)

// Image описывает изображение товара, которое хранится в S3.
type Image struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	Size      *int64
	MimeType  *string // Example: "image/png"
}

func NewImage(id string, bucket string, objectKey string, data []byte, size *int64, mimeType *string) *Image {
	return &Image{
		ID:        id,
		Bucket:    bucket,
		ObjectKey: objectKey,
		Bytes:     data,
		Size:      size,
		MimeType:  mimeType,
	}
}

// ImageAction — выбор судьбы изображения при обновлении товара.
// Ровно один из трёх вариантов, выводится из пары входных сигналов.
type ImageAction int

const (
	ImageRetain  ImageAction = iota // оставить сохранённое изображение
	ImageReplace                    // заменить новым файлом
	ImageClear                      // удалить изображение
)

// DecideImageAction выводит действие из двух сигналов формы:
// новый файл имеет приоритет над флагом удаления.
func DecideImageAction(hasNewFile, removeFlag bool) ImageAction {
	switch {
	case hasNewFile:
		return ImageReplace
	case removeFlag:
		return ImageClear
	default:
		return ImageRetain
	}
}

// DataURI кодирует сохранённые байты изображения для отображения в виде data-URI.
func DataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
