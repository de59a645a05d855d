package repository

import (
	"context"

	"shineon/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (string, error)
	//transactionIdが一致した注文をPAIDへ。一致が無ければfalse（エラーにしない）。
	MarkPaidByTransactionID(ctx context.Context, tranID string) (bool, error)
	//transactionIdが一致した注文を削除。一致が無ければfalse（エラーにしない）。
	DeleteByTransactionID(ctx context.Context, tranID string) (bool, error)
}
