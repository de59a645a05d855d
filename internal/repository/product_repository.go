package repository

import (
	"context"

	"shineon/internal/domain/model"
)

type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (string, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	//IDで1件取得。無ければErrNotFound。
	FindByID(ctx context.Context, id string) (model.Product, error)
}
