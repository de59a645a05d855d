package server

import (
	"net/http"

	"shineon/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
}

// RegisterRoutes は全ルートを起動時に一度だけ登録する。
func RegisterRoutes(e *echo.Echo, h Handlers) {
	//死活確認
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Shine On is Running")
	})

	h.Auth.RegisterRoutes(e)
	h.User.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
}
