package usecase

import "context"

type CategoryUC interface {
	List(ctx context.Context) (*CategoryListRes, error)
	Detail(ctx context.Context, id int64) (*CategoryDetailRes, error)
	Create(ctx context.Context, req *SaveCategoryReq) (*SaveCategoryRes, error)
	UpdateForm(ctx context.Context, id int64) (*CategoryDetailRes, error)
	Update(ctx context.Context, id int64, req *SaveCategoryReq) (*SaveCategoryRes, error)
	DeleteForm(ctx context.Context, id int64) (*CategoryDeleteRes, error)
	Delete(ctx context.Context, id int64) (*CategoryDeleteRes, error)
}

type ItemUC interface {
	List(ctx context.Context) (*ItemListRes, error)
	Detail(ctx context.Context, id int64) (*ItemDetailRes, error)
	CreateForm(ctx context.Context) (*ItemFormRes, error)
	Create(ctx context.Context, req *SaveItemReq) (*SaveItemRes, error)
	UpdateForm(ctx context.Context, id int64) (*ItemFormRes, error)
	Update(ctx context.Context, id int64, req *SaveItemReq) (*SaveItemRes, error)
	Delete(ctx context.Context, id int64) error
}
