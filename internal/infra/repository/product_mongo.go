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

type ProductMongoRepository struct {
	coll *mongo.Collection
}

// DI
func NewProductMongoRepository(db *mongo.Database) *ProductMongoRepository {
	return &ProductMongoRepository{coll: db.Collection("jewelry")}
}

func (r *ProductMongoRepository) Create(ctx context.Context, p model.Product) (string, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res.InsertedID), nil
}

func (r *ProductMongoRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductMongoRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Product{}, repo.ErrNotFound
	}

	var p model.Product
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}
