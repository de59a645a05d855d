package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product はjewelryコレクションの1件。作成と参照のみで更新/削除はない。
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Rating      float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	SellerEmail string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
}
