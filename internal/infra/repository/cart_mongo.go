package repository

import (
	"context"
	"errors"

	"shineon/internal/domain/model"
	repo "shineon/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartMongoRepository struct {
	coll *mongo.Collection
}

// DI
func NewCartMongoRepository(db *mongo.Database) *CartMongoRepository {
	return &CartMongoRepository{coll: db.Collection("addCart")}
}

func (r *CartMongoRepository) Create(ctx context.Context, entry model.CartEntry) (string, error) {
	res, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res.InsertedID), nil
}

func (r *CartMongoRepository) ListByEmail(ctx context.Context, email string) ([]model.CartEntry, error) {
	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []model.CartEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *CartMongoRepository) FindByID(ctx context.Context, id string) (model.CartEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.CartEntry{}, repo.ErrNotFound
	}

	var entry model.CartEntry
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.CartEntry{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartEntry{}, err
	}
	return entry, nil
}

func (r *CartMongoRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repo.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
