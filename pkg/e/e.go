package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest  = fmt.Errorf("bad request")
	ErrExpectedMultipart = fmt.Errorf("expected multipart/form-data")
	ErrInvalidID         = fmt.Errorf("invalid id")
	ErrFileTooLarge      = fmt.Errorf("image exceeds the 2 MiB limit")
	ErrBadFileExtension  = fmt.Errorf("file extension must be png, jpeg or jpg")
	ErrBadFileMimeType   = fmt.Errorf("file content type must be image/png, image/jpeg or image/jpg")

	// 404 Not Found
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrItemNotFound     = fmt.Errorf("item not found")
	ErrImageNotFound    = fmt.Errorf("image not found")

	// 409 Conflict
	ErrNoCategories = fmt.Errorf("an item cannot be created before at least one category exists")

	// 413 Request Entity Too Large
	ErrRequestTooLarge = fmt.Errorf("request body exceeds the 6 MiB limit")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
