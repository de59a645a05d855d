package usecase

import (
	"errors"
	"testing"
	"time"

	"shineon/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseToken(t *testing.T, secret string, raw string) (jwt.MapClaims, error) {
	t.Helper()

	token, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	return claims, nil
}

// 発行→検証でemailがそのまま往復する
func TestAuthUsecase_IssueToken_RoundTrip(t *testing.T) {
	uc := NewAuthUsecase(config.Config{JWTSecret: "test-secret"})

	now := time.Now()
	out, err := uc.IssueToken(map[string]interface{}{"email": "alice@example.com"}, now)
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := parseToken(t, "test-secret", out.Token)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", claims["email"])

	//有効期限は1時間
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Equal(t, now.Add(time.Hour).Unix(), int64(exp))
}

// 期限切れトークンは検証で落ちる
func TestAuthUsecase_IssueToken_Expired(t *testing.T) {
	uc := NewAuthUsecase(config.Config{JWTSecret: "test-secret"})

	out, err := uc.IssueToken(map[string]interface{}{"email": "alice@example.com"}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = parseToken(t, "test-secret", out.Token)
	assert.Error(t, err)
}

// 別シークレットで署名検証は通らない
func TestAuthUsecase_IssueToken_WrongSecret(t *testing.T) {
	uc := NewAuthUsecase(config.Config{JWTSecret: "test-secret"})

	out, err := uc.IssueToken(map[string]interface{}{"email": "alice@example.com"}, time.Now())
	require.NoError(t, err)

	_, err = parseToken(t, "other-secret", out.Token)
	assert.Error(t, err)
}

// claimの追加フィールドもそのまま乗る
func TestAuthUsecase_IssueToken_KeepsExtraClaims(t *testing.T) {
	uc := NewAuthUsecase(config.Config{JWTSecret: "test-secret"})

	out, err := uc.IssueToken(map[string]interface{}{
		"email": "alice@example.com",
		"name":  "Alice",
	}, time.Now())
	require.NoError(t, err)

	claims, err := parseToken(t, "test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "Alice", claims["name"])
}
