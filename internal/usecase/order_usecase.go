package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shineon/internal/config"
	"shineon/internal/domain/model"
	"shineon/internal/gateway"
	repo "shineon/internal/repository"

	"github.com/google/uuid"
)

// PaymentGateway はホスト型決済ページのセッション開始だけを約束する。
type PaymentGateway interface {
	InitPayment(ctx context.Context, req gateway.PaymentRequest) (gateway.PaymentSession, error)
}

// OrderUsecase は注文のライフサイクルを持つ。
//
//	(なし) --checkout--> PENDING --成功コールバック--> PAID
//	                        |
//	                        +---失敗コールバック--> (削除)
type OrderUsecase struct {
	cfg      config.Config
	products repo.ProductRepository
	orders   repo.OrderRepository
	gw       PaymentGateway
}

// DI
func NewOrderUsecase(
	cfg config.Config,
	products repo.ProductRepository,
	orders repo.OrderRepository,
	gw PaymentGateway,
) *OrderUsecase {
	return &OrderUsecase{
		cfg:      cfg,
		products: products,
		orders:   orders,
		gw:       gw,
	}
}

type CheckoutInput struct {
	ProductID     string
	Currency      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type CheckoutOutput struct {
	URL string `json:"url"`
}

// Checkout は商品参照からPENDING注文を作り、決済ページURLを返す。
// transaction idは呼び出しごとに新規採番する。
// 注文レコードの挿入はレスポンスを返す前に完了させる（コールバックが先に届いても照合できる）。
func (u *OrderUsecase) Checkout(ctx context.Context, in CheckoutInput) (CheckoutOutput, error) {
	if in.ProductID == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "productId is required")
	}

	p, err := u.products.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CheckoutOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	tranID := uuid.NewString()

	currency := in.Currency
	if currency == "" {
		currency = "BDT"
	}
	customerName := in.CustomerName
	if customerName == "" {
		customerName = "Customer"
	}
	customerEmail := in.CustomerEmail
	if customerEmail == "" {
		customerEmail = "customer@shine-on.shop"
	}
	customerPhone := in.CustomerPhone
	if customerPhone == "" {
		customerPhone = "01700000000"
	}

	sess, err := u.gw.InitPayment(ctx, gateway.PaymentRequest{
		Amount:   p.Price,
		Currency: currency,
		TranID:   tranID,

		SuccessURL: u.cfg.CallbackBaseURL + "/payment/success/" + tranID,
		FailURL:    u.cfg.CallbackBaseURL + "/payment/fail/" + tranID,
		CancelURL:  u.cfg.CallbackBaseURL + "/payment/fail/" + tranID,
		IPNURL:     u.cfg.CallbackBaseURL + "/payment/ipn",

		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		CustomerPhone: customerPhone,

		ProductName:     p.Name,
		ProductCategory: p.Category,
	})
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadGateway, "payment gateway error")
	}

	_, err = u.orders.Create(ctx, model.Order{
		Product:       p,
		PaidStatus:    false,
		TransactionID: tranID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Currency:      currency,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CheckoutOutput{URL: sess.RedirectURL}, nil
}

// HandlePaymentSuccess はtransactionIdの一致した注文をPAIDにする。
// 一致が無いときは何もしない（エラーにもしない）。
func (u *OrderUsecase) HandlePaymentSuccess(ctx context.Context, tranID string) (bool, error) {
	matched, err := u.orders.MarkPaidByTransactionID(ctx, tranID)
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return matched, nil
}

// HandlePaymentFail はtransactionIdの一致した注文を削除する。
// 失敗の終端状態は残さない。一致が無いときは何もしない。
func (u *OrderUsecase) HandlePaymentFail(ctx context.Context, tranID string) (bool, error) {
	deleted, err := u.orders.DeleteByTransactionID(ctx, tranID)
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return deleted, nil
}
