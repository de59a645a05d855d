package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（5000）

	MongoURI string // 接続URI（あれば最優先）
	DBUser   string // DBユーザー
	DBPass   string // DBパスワード
	DBHost   string // DBホスト（Atlasクラスタ）
	DBName   string // DB名（shine-on）

	JWTSecret string // トークン署名シークレット

	StoreID     string // 決済ゲートウェイのstore id
	StorePasswd string // 決済ゲートウェイのstore password
	GatewayLive bool   // true=本番 / false=サンドボックス

	CallbackBaseURL string // ゲートウェイから到達できるコールバックの起点URL
	FrontendURL     string // 決済完了後のリダイレクト先
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		MongoURI: os.Getenv("MONGO_URI"),
		DBUser:   os.Getenv("DB_USER"),
		DBPass:   os.Getenv("DB_PASS"),
		DBHost:   os.Getenv("DB_HOST"),
		DBName:   os.Getenv("DB_NAME"),

		JWTSecret: os.Getenv("ACCESS_TOKEN_SECRET"),

		StoreID:     os.Getenv("STORE_ID"),
		StorePasswd: os.Getenv("STORE_PASSWD"),
		GatewayLive: envBool("SSLCZ_IS_LIVE", false),

		CallbackBaseURL: os.Getenv("CALLBACK_BASE_URL"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DBName == "" {
		cfg.DBName = "shine-on"
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.MongoURI == "" {
		if cfg.DBUser == "" {
			return Config{}, fmt.Errorf("DB_USER is required")
		}
		if cfg.DBPass == "" {
			return Config{}, fmt.Errorf("DB_PASS is required")
		}
		if cfg.DBHost == "" {
			return Config{}, fmt.Errorf("DB_HOST is required")
		}
	}
	if cfg.StoreID == "" {
		return Config{}, fmt.Errorf("STORE_ID is required")
	}
	if cfg.StorePasswd == "" {
		return Config{}, fmt.Errorf("STORE_PASSWD is required")
	}
	if cfg.CallbackBaseURL == "" {
		return Config{}, fmt.Errorf("CALLBACK_BASE_URL is required")
	}
	if cfg.FrontendURL == "" {
		return Config{}, fmt.Errorf("FRONTEND_URL is required")
	}

	return cfg, nil
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
