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

type UserMongoRepository struct {
	coll *mongo.Collection
}

// DI
func NewUserMongoRepository(db *mongo.Database) *UserMongoRepository {
	return &UserMongoRepository{coll: db.Collection("users")}
}

func (r *UserMongoRepository) Create(ctx context.Context, user model.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res.InsertedID), nil
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserMongoRepository) ListAll(ctx context.Context) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserMongoRepository) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserMongoRepository) SetRole(ctx context.Context, id string, role string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repo.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// InsertedIDはObjectIDのはずだが、念のため型を確認する
func insertedIDHex(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
