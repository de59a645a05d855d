package usecase

import (
	"context"
	"errors"
	"net/http"

	"shineon/internal/domain/model"
	repo "shineon/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
}

// DI
func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

type CreateProductOutput struct {
	InsertedID string `json:"insertedId"`
}

// CreateProduct はスキーマ検証なしの素通し挿入。
func (u *ProductUsecase) CreateProduct(ctx context.Context, p model.Product) (CreateProductOutput, error) {
	id, err := u.products.Create(ctx, p)
	if err != nil {
		return CreateProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CreateProductOutput{InsertedID: id}, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id string) (model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
