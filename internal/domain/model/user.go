package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User はusersコレクションの1件。emailが自然キー（重複禁止）。
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
}
