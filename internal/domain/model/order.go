package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order はorderコレクションの1件。
// paidStatus=false（PENDING）で作成され、成功コールバックでtrue（PAID）、
// 失敗コールバックでレコードごと削除される。
// transactionIdがゲートウェイのコールバックと突き合わせる唯一のキー。
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Product       Product            `bson:"product" json:"product"`
	PaidStatus    bool               `bson:"paidStatus" json:"paidStatus"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CustomerName  string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerEmail string             `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	Currency      string             `bson:"currency,omitempty" json:"currency,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
