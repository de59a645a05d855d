package handler

import (
	"net/http"

	"shineon/internal/config"
	"shineon/internal/domain/model"
	"shineon/internal/middleware"
	"shineon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart のHTTP
type CartHandler struct {
	cfg config.Config
	uc  *usecase.CartUsecase
}

// DI
func NewCartHandler(cfg config.Config, uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{cfg: cfg, uc: uc}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/cart", h.add)
	e.GET("/cart", h.list, middleware.AuthJWT(h.cfg))
	e.GET("/cart/:id", h.detail)
	e.DELETE("/cart/:id", h.remove)
}

func (h *CartHandler) add(c echo.Context) error {
	var entry model.CartEntry
	if err := c.Bind(&entry); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), entry)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) list(c echo.Context) error {
	claimEmail, ok := getClaimEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized access"})
	}

	out, err := h.uc.ListCart(c.Request().Context(), claimEmail, c.QueryParam("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) detail(c echo.Context) error {
	out, err := h.uc.GetEntry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) remove(c echo.Context) error {
	out, err := h.uc.RemoveEntry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
