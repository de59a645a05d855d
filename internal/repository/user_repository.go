package repository

import (
	"context"

	"shineon/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user model.User) (string, error)
	//メールからユーザーを一件取得する。無ければErrNotFound。
	FindByEmail(ctx context.Context, email string) (model.User, error)
	//全ユーザー（管理者の一覧画面用）
	ListAll(ctx context.Context) ([]model.User, error)
	//ロールで絞った一覧
	ListByRole(ctx context.Context, role string) ([]model.User, error)
	//対象ユーザーのロールを書き換える。対象が無ければErrNotFound。
	SetRole(ctx context.Context, id string, role string) error
}
