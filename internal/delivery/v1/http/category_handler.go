package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Возвращает все категории и все товары
//	@Tags			categories
//	@Produce		json
//	@Success		200	{object}	usecase.CategoryListRes
//	@Router			/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	res, err := c.categoryUsecase.List(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// categoryDetail
//
//	@Summary		Карточка категории
//	@Description	Категория и товары, которые на неё ссылаются
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"ID категории"
//	@Success		200	{object}	usecase.CategoryDetailRes
//	@Failure		404	{object}	ErrorResponse
//	@Router			/category/{id} [get]
func (c *CategoryHandler) categoryDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.Detail(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// createCategoryForm
//
//	@Summary		Форма создания категории
//	@Tags			categories
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/category/create [get]
func (c *CategoryHandler) createCategoryForm(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{
		"name":        "",
		"description": "",
	})
}

// createCategory
//
//	@Summary		Создание категории
//	@Description	Дубликат по имени отправляет на существующую запись без изменений
//	@Tags			categories
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			name		formData	string	true	"Название"
//	@Param			description	formData	string	false	"Описание"
//	@Success		303			{string}	string	"Location — адрес записи"
//	@Failure		422			{object}	ValidationResponse
//	@Router			/category/create [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	req, err := parseCategoryForm(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.Create(r.Context(), req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	c.writeSaveResult(w, res)
}

// updateCategoryForm
//
//	@Summary		Форма обновления категории
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"ID категории"
//	@Success		200	{object}	usecase.CategoryDetailRes
//	@Failure		404	{object}	ErrorResponse
//	@Router			/category/{id}/update [get]
func (c *CategoryHandler) updateCategoryForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.UpdateForm(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// updateCategory
//
//	@Summary		Обновление категории
//	@Tags			categories
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			id			path		int		true	"ID категории"
//	@Param			name		formData	string	true	"Название"
//	@Param			description	formData	string	false	"Описание"
//	@Success		303			{string}	string	"Location — адрес записи"
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ValidationResponse
//	@Router			/category/{id}/update [post]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := parseCategoryForm(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.Update(r.Context(), id, req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	c.writeSaveResult(w, res)
}

// deleteCategoryForm
//
//	@Summary		Подтверждение удаления категории
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"ID категории"
//	@Success		200	{object}	usecase.CategoryDeleteRes
//	@Failure		404	{object}	ErrorResponse
//	@Router			/category/{id}/delete [get]
func (c *CategoryHandler) deleteCategoryForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.DeleteForm(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Блокируется со списком товаров, если на категорию ещё ссылаются
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"ID категории"
//	@Success		303	{string}	string	"Location — список категорий"
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	usecase.CategoryDeleteRes
//	@Router			/category/{id}/delete [post]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.Delete(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if !res.Deleted {
		WriteSuccess(w, http.StatusConflict, res)
		return
	}

	WriteSeeOther(w, "/api/v1/categories")
}

// writeSaveResult переводит исход записи категории в HTTP-ответ:
// 422 при нарушениях, 303 на существующую или записанную категорию.
func (c *CategoryHandler) writeSaveResult(w http.ResponseWriter, res *usecase.SaveCategoryRes) {
	switch {
	case len(res.Violations) > 0:
		WriteViolations(w, res.Violations, res.Fields)
	case res.Existing != nil:
		WriteSeeOther(w, res.Existing.URL())
	default:
		WriteSeeOther(w, res.Category.URL())
	}
}
