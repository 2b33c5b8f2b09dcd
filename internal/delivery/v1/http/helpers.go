package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/inventory-backend/internal/intake"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/internal/validation"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ValidationResponse — тело 422: все нарушения и введённые поля для перерисовки формы.
type ValidationResponse struct {
	Violations []validation.FieldError `json:"violations"`
	Fields     map[string]string       `json:"fields"`
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrInvalidID):
		return http.StatusBadRequest, e.ErrInvalidID.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrItemNotFound):
		return http.StatusNotFound, e.ErrItemNotFound.Error()
	case errors.Is(err, e.ErrImageNotFound):
		return http.StatusNotFound, e.ErrImageNotFound.Error()
	case errors.Is(err, e.ErrNoCategories):
		return http.StatusConflict, e.ErrNoCategories.Error()
	case errors.Is(err, e.ErrRequestTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrRequestTooLarge.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteViolations отдаёт 422 со всеми нарушениями и частичной записью.
func WriteViolations(w http.ResponseWriter, violations []validation.FieldError, fields map[string]string) {
	WriteSuccess(w, http.StatusUnprocessableEntity, &ValidationResponse{
		Violations: violations,
		Fields:     fields,
	})
}

// WriteSeeOther отправляет запросивших по каноническому адресу записи.
func WriteSeeOther(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusSeeOther)
}

// parseID извлекает числовой идентификатор из пути.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(raw, e.ErrInvalidID)
	}

	return id, nil
}

// ensureMultipartForm ограничивает тело запроса и разбирает multipart-форму.
func ensureMultipartForm(w http.ResponseWriter, r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}

	r.Body = http.MaxBytesReader(w, r.Body, intake.MaxRequestSize)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrRequestTooLarge)
		}
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}

	return nil
}

// parseCategoryForm читает поля категории из обычной или multipart-формы.
func parseCategoryForm(r *http.Request) (*usecase.SaveCategoryReq, error) {
	if err := r.ParseForm(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}

	return usecase.NewSaveCategoryReq(r.FormValue("name"), r.FormValue("description")), nil
}

// parseItemForm читает поля товара и необязательный файл изображения.
func parseItemForm(r *http.Request) (*usecase.SaveItemReq, error) {
	req := &usecase.SaveItemReq{
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		CategoryName: r.FormValue("category"),
		Price:        r.FormValue("price"),
		Small:        r.FormValue("small"),
		Medium:       r.FormValue("medium"),
		Large:        r.FormValue("large"),
		ExtraLarge:   r.FormValue("extra_large"),
		RemoveImage:  r.FormValue("remove_image") != "",
	}

	if r.MultipartForm == nil {
		return req, nil
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		return req, nil
	}

	file, err := readFile(files[0])
	if err != nil {
		return nil, err
	}
	req.Image = file

	return req, nil
}

func readFile(fh *multipart.FileHeader) (*intake.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return intake.NewFile(fh.Filename, mimeType, int64(len(data)), data), nil
}
