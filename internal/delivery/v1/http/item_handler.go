package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

// Буфер разбора multipart-форм в памяти.
const maxMemory = 8 << 20

type ItemHandler struct {
	itemUsecase usecase.ItemUC
	logger      logger.Logger
}

func NewItemHandler(itemUsecase usecase.ItemUC, logger logger.Logger) *ItemHandler {
	return &ItemHandler{itemUsecase: itemUsecase, logger: logger}
}

// listItems
//
//	@Summary		Список товаров
//	@Tags			items
//	@Produce		json
//	@Success		200	{object}	usecase.ItemListRes
//	@Router			/items [get]
func (i *ItemHandler) listItems(w http.ResponseWriter, r *http.Request) {
	res, err := i.itemUsecase.List(r.Context())
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// itemDetail
//
//	@Summary		Карточка товара
//	@Description	Товар с именем категории; изображение встроено как base64 data URI
//	@Tags			items
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	usecase.ItemDetailRes
//	@Failure		404	{object}	ErrorResponse
//	@Router			/item/{id} [get]
func (i *ItemHandler) itemDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := i.itemUsecase.Detail(r.Context(), id)
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// createItemForm
//
//	@Summary		Форма создания товара
//	@Description	Отклоняется, пока не создана хотя бы одна категория
//	@Tags			items
//	@Produce		json
//	@Success		200	{object}	usecase.ItemFormRes
//	@Failure		409	{object}	ErrorResponse
//	@Router			/item/create [get]
func (i *ItemHandler) createItemForm(w http.ResponseWriter, r *http.Request) {
	res, err := i.itemUsecase.CreateForm(r.Context())
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// createItem
//
//	@Summary		Создание товара
//	@Description	Дубликат по имени отправляет на существующую запись без изменений
//	@Tags			items
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название"
//	@Param			description	formData	string	false	"Описание"
//	@Param			category	formData	string	false	"Имя категории"
//	@Param			price		formData	string	true	"Цена"
//	@Param			small		formData	string	false	"Остаток S"
//	@Param			medium		formData	string	false	"Остаток M"
//	@Param			large		formData	string	false	"Остаток L"
//	@Param			extra_large	formData	string	false	"Остаток XL"
//	@Param			image		formData	file	false	"Изображение (png/jpeg, до 2 МиБ)"
//	@Success		303			{string}	string	"Location — адрес записи"
//	@Failure		413			{object}	ErrorResponse
//	@Failure		422			{object}	ValidationResponse
//	@Router			/item/create [post]
func (i *ItemHandler) createItem(w http.ResponseWriter, r *http.Request) {
	req, err := i.parseRequest(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := i.itemUsecase.Create(r.Context(), req)
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	i.writeSaveResult(w, res)
}

// updateItemForm
//
//	@Summary		Форма обновления товара
//	@Tags			items
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	usecase.ItemFormRes
//	@Failure		404	{object}	ErrorResponse
//	@Router			/item/{id}/update [get]
func (i *ItemHandler) updateItemForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := i.itemUsecase.UpdateForm(r.Context(), id)
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// updateItem
//
//	@Summary		Обновление товара
//	@Description	Новый файл заменяет изображение, флаг remove_image очищает его, без того и другого изображение сохраняется
//	@Tags			items
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id				path		int		true	"ID товара"
//	@Param			remove_image	formData	string	false	"Удалить изображение"
//	@Param			image			formData	file	false	"Новое изображение"
//	@Success		303				{string}	string	"Location — адрес записи"
//	@Failure		404				{object}	ErrorResponse
//	@Failure		422				{object}	ValidationResponse
//	@Router			/item/{id}/update [post]
func (i *ItemHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := i.parseRequest(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := i.itemUsecase.Update(r.Context(), id, req)
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	i.writeSaveResult(w, res)
}

// deleteItemForm
//
//	@Summary		Подтверждение удаления товара
//	@Tags			items
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	usecase.ItemDetailRes
//	@Success		303	{string}	string	"редирект на список, если товар уже удалён"
//	@Router			/item/{id}/delete [get]
func (i *ItemHandler) deleteItemForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := i.itemUsecase.Detail(r.Context(), id)
	if errors.Is(err, e.ErrItemNotFound) {
		WriteSeeOther(w, "/api/v1/items")
		return
	}
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// deleteItem
//
//	@Summary		Удаление товара
//	@Tags			items
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		303	{string}	string	"Location — список товаров"
//	@Router			/item/{id}/delete [post]
func (i *ItemHandler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := i.itemUsecase.Delete(r.Context(), id); err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSeeOther(w, "/api/v1/items")
}

func (i *ItemHandler) parseRequest(w http.ResponseWriter, r *http.Request) (*usecase.SaveItemReq, error) {
	if err := ensureMultipartForm(w, r, maxMemory); err != nil {
		i.logger.Warnf("%d %s: %s", http.StatusBadRequest, err.Error(), r.Header.Get("Content-Type"))
		return nil, err
	}

	return parseItemForm(r)
}

// writeSaveResult переводит исход записи товара в HTTP-ответ:
// 422 при нарушениях, 303 на существующую или записанную запись.
func (i *ItemHandler) writeSaveResult(w http.ResponseWriter, res *usecase.SaveItemRes) {
	switch {
	case len(res.Violations) > 0:
		WriteViolations(w, res.Violations, res.Fields)
	case res.Existing != nil:
		WriteSeeOther(w, res.Existing.URL())
	default:
		WriteSeeOther(w, res.Item.URL())
	}
}
