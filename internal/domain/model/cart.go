package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartEntry はaddCartコレクションの1件。
// 追加のたびに新規レコードになる（数量やマージの概念はない）。
type CartEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	ProductID string             `bson:"productId" json:"productId"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}
