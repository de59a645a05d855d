package usecase

import (
	"context"
	"errors"
	"net/http"

	"shineon/internal/domain/model"
	repo "shineon/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// カートは所有者email単位の素朴なレコード列で、数量やマージの概念はない。
type CartUsecase struct {
	cart repo.CartRepository
}

// DI
func NewCartUsecase(cart repo.CartRepository) *CartUsecase {
	return &CartUsecase{cart: cart}
}

type AddCartOutput struct {
	InsertedID string `json:"insertedId"`
}

type DeleteCartOutput struct {
	DeletedCount int64 `json:"deletedCount"`
}

// AddToCart は素通し挿入。重複チェックも本人確認もしない。
func (u *CartUsecase) AddToCart(ctx context.Context, entry model.CartEntry) (AddCartOutput, error) {
	id, err := u.cart.Create(ctx, entry)
	if err != nil {
		return AddCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return AddCartOutput{InsertedID: id}, nil
}

// ListCart は所有者本人の一覧だけを返す。
// emailクエリ無しは空列、他人のemailは403。
func (u *CartUsecase) ListCart(ctx context.Context, claimEmail string, email string) ([]model.CartEntry, error) {
	if email == "" {
		return []model.CartEntry{}, nil
	}

	//所有チェック（他人のカートなら403）
	if claimEmail != email {
		return nil, NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	entries, err := u.cart.ListByEmail(ctx, email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return entries, nil
}

func (u *CartUsecase) GetEntry(ctx context.Context, id string) (model.CartEntry, error) {
	entry, err := u.cart.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.CartEntry{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.CartEntry{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return entry, nil
}

func (u *CartUsecase) RemoveEntry(ctx context.Context, id string) (DeleteCartOutput, error) {
	count, err := u.cart.DeleteByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return DeleteCartOutput{DeletedCount: 0}, nil
	}
	if err != nil {
		return DeleteCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return DeleteCartOutput{DeletedCount: count}, nil
}
