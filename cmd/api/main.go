package main

import (
	"context"
	"log"

	"shineon/internal/config"
	"shineon/internal/gateway"
	"shineon/internal/handler"
	"shineon/internal/infra/db"
	infraRepo "shineon/internal/infra/repository"
	"shineon/internal/server"
	"shineon/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	ctx := context.Background()
	client, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	log.Println("Connected to MongoDB!")

	database := client.Database(cfg.DBName)

	//Repository（Mongo実装）生成
	userRepo := infraRepo.NewUserMongoRepository(database)
	productRepo := infraRepo.NewProductMongoRepository(database)
	cartRepo := infraRepo.NewCartMongoRepository(database)
	orderRepo := infraRepo.NewOrderMongoRepository(database)

	//決済ゲートウェイ
	gw := gateway.NewSSLCommerzClient(cfg)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg)
	userUC := usecase.NewUserUsecase(userRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo)
	orderUC := usecase.NewOrderUsecase(cfg, productRepo, orderRepo, gw)

	//Handler生成
	handlers := server.Handlers{
		Auth:    handler.NewAuthHandler(authUC),
		User:    handler.NewUserHandler(cfg, userUC, userRepo),
		Product: handler.NewProductHandler(productUC),
		Cart:    handler.NewCartHandler(cfg, cartUC),
		Order:   handler.NewOrderHandler(cfg, orderUC),
	}

	//Server起動
	log.Printf("Shine On is Running on port %s", cfg.Port)
	if err := server.Start(":"+cfg.Port, handlers); err != nil {
		log.Fatal(err)
	}
}
