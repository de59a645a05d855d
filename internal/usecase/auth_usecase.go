package usecase

import (
	"net/http"
	"time"

	"shineon/internal/config"

	"github.com/golang-jwt/jwt/v4"
)

// トークンの有効期限
const accessTokenTTL = time.Hour

type AuthUsecase struct {
	cfg config.Config
}

// DI
func NewAuthUsecase(cfg config.Config) *AuthUsecase {
	return &AuthUsecase{cfg: cfg}
}

type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken は呼び出し側が渡したclaim（最低限email入り）をそのまま署名する。
// 入力検証は「デコードできること」以上はしない。
func (u *AuthUsecase) IssueToken(claim map[string]interface{}, now time.Time) (TokenResponse, error) {
	claims := jwt.MapClaims{}
	for k, v := range claim {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(accessTokenTTL).Unix()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return TokenResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return TokenResponse{Token: signed}, nil
}
