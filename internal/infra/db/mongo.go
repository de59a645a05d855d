package db

import (
	"context"
	"fmt"
	"time"

	"shineon/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect はMongoに接続して *mongo.Client を返す。
func Connect(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	// MONGO_URI があれば最優先で使う
	uri := cfg.MongoURI
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			cfg.DBUser, cfg.DBPass, cfg.DBHost,
		)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	//疎通確認
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}
