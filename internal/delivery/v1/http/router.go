package http

import (
	_ "github.com/DRSN-tech/inventory-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catUC usecase.CategoryUC, itemUC usecase.ItemUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCategoryRoutes(v1, NewCategoryHandler(catUC, r.logger))
		registerItemRoutes(v1, NewItemHandler(itemUC, r.logger))
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Get("/categories", h.listCategories)
	router.Route("/category", func(cat chi.Router) {
		cat.Get("/create", h.createCategoryForm)
		cat.Post("/create", h.createCategory)
		cat.Route("/{id}", func(one chi.Router) {
			one.Get("/", h.categoryDetail)
			one.Get("/update", h.updateCategoryForm)
			one.Post("/update", h.updateCategory)
			one.Get("/delete", h.deleteCategoryForm)
			one.Post("/delete", h.deleteCategory)
		})
	})
}

func registerItemRoutes(router chi.Router, h *ItemHandler) {
	router.Get("/items", h.listItems)
	router.Route("/item", func(it chi.Router) {
		it.Get("/create", h.createItemForm)
		it.Post("/create", h.createItem)
		it.Route("/{id}", func(one chi.Router) {
			one.Get("/", h.itemDetail)
			one.Get("/update", h.updateItemForm)
			one.Post("/update", h.updateItem)
			one.Get("/delete", h.deleteItemForm)
			one.Post("/delete", h.deleteItem)
		})
	})
}
