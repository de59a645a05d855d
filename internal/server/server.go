package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はミドルウェアとルートを設定したechoを返す。
func New(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	RegisterRoutes(e, h)
	return e
}

func Start(addr string, h Handlers) error {
	return New(h).Start(addr)
}
