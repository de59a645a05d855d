package handler

import (
	"net/http"
	"time"

	"shineon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /jwt のHTTP
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/jwt", h.issueToken)
}

// フロントがログイン直後に呼ぶ。claimは任意のオブジェクト（通常は{email}）。
func (h *AuthHandler) issueToken(c echo.Context) error {
	claim := map[string]interface{}{}
	if err := c.Bind(&claim); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.IssueToken(claim, time.Now())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
