package repository

import (
	"context"

	"shineon/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderMongoRepository struct {
	coll *mongo.Collection
}

// DI
func NewOrderMongoRepository(db *mongo.Database) *OrderMongoRepository {
	return &OrderMongoRepository{coll: db.Collection("order")}
}

func (r *OrderMongoRepository) Create(ctx context.Context, order model.Order) (string, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res.InsertedID), nil
}

func (r *OrderMongoRepository) MarkPaidByTransactionID(ctx context.Context, tranID string) (bool, error) {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"transactionId": tranID},
		bson.M{"$set": bson.M{"paidStatus": true}},
	)
	if err != nil {
		return false, err
	}
	//支払い済みに再送されても「一致した」扱いにする
	return res.MatchedCount > 0, nil
}

func (r *OrderMongoRepository) DeleteByTransactionID(ctx context.Context, tranID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"transactionId": tranID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
