package handler

import (
	"net/http"

	"shineon/internal/config"
	"shineon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /order と決済コールバックのHTTP
type OrderHandler struct {
	cfg config.Config
	uc  *usecase.OrderUsecase
}

// DI
func NewOrderHandler(cfg config.Config, uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{cfg: cfg, uc: uc}
}

type CheckoutRequest struct {
	ProductID string `json:"productId"`
	Currency  string `json:"currency"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/order", h.checkout)
	//ゲートウェイが叩くコールバック。起動時に登録し、tran_idはパスから取る。
	e.POST("/payment/success/:tranId", h.paymentSuccess)
	e.POST("/payment/fail/:tranId", h.paymentFail)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		ProductID:     req.ProductID,
		Currency:      req.Currency,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) paymentSuccess(c echo.Context) error {
	matched, err := h.uc.HandlePaymentSuccess(c.Request().Context(), c.Param("tranId"))
	if err != nil {
		return writeError(c, err)
	}

	if matched {
		return c.Redirect(http.StatusSeeOther, h.cfg.FrontendURL+"/payment/success")
	}
	//一致なしは黙って終わる
	return c.NoContent(http.StatusOK)
}

func (h *OrderHandler) paymentFail(c echo.Context) error {
	deleted, err := h.uc.HandlePaymentFail(c.Request().Context(), c.Param("tranId"))
	if err != nil {
		return writeError(c, err)
	}

	if deleted {
		return c.Redirect(http.StatusSeeOther, h.cfg.FrontendURL+"/payment/fail")
	}
	return c.NoContent(http.StatusOK)
}
