package repository

import (
	"context"

	"shineon/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context, entry model.CartEntry) (string, error)
	//所有者メールで絞った一覧
	ListByEmail(ctx context.Context, email string) ([]model.CartEntry, error)
	//IDで1件取得。無ければErrNotFound。
	FindByID(ctx context.Context, id string) (model.CartEntry, error)
	//IDで削除して削除件数を返す
	DeleteByID(ctx context.Context, id string) (int64, error)
}
