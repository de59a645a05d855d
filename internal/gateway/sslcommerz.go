package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shineon/internal/config"
)

const (
	sandboxInitURL = "https://sandbox.sslcommerz.com/gwprocess/v4/api.php"
	liveInitURL    = "https://securepay.sslcommerz.com/gwprocess/v4/api.php"
)

// PaymentRequest はホスト型決済ページのセッション開始リクエスト。
type PaymentRequest struct {
	Amount   float64
	Currency string
	TranID   string

	SuccessURL string
	FailURL    string
	CancelURL  string
	IPNURL     string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ProductName     string
	ProductCategory string
}

// PaymentSession はゲートウェイの応答。RedirectURLへ顧客を誘導する。
type PaymentSession struct {
	Status      string
	RedirectURL string
}

type SSLCommerzClient struct {
	storeID     string
	storePasswd string
	initURL     string
	httpClient  *http.Client
}

// DI
func NewSSLCommerzClient(cfg config.Config) *SSLCommerzClient {
	initURL := sandboxInitURL
	if cfg.GatewayLive {
		initURL = liveInitURL
	}

	return &SSLCommerzClient{
		storeID:     cfg.StoreID,
		storePasswd: cfg.StorePasswd,
		initURL:     initURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// InitPayment はセッション開始APIをフォームPOSTで呼び、決済ページURLを返す。
// リトライはしない。失敗はそのまま呼び出し側へ返す。
func (c *SSLCommerzClient) InitPayment(ctx context.Context, req PaymentRequest) (PaymentSession, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePasswd)
	form.Set("total_amount", fmt.Sprintf("%.2f", req.Amount))
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TranID)

	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	if req.IPNURL != "" {
		form.Set("ipn_url", req.IPNURL)
	}

	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_phone", req.CustomerPhone)
	//配送情報はAPI必須項目。注文入力からは取らない固定値。
	form.Set("cus_add1", "Dhaka")
	form.Set("cus_city", "Dhaka")
	form.Set("cus_country", "Bangladesh")
	form.Set("shipping_method", "NO")

	form.Set("product_name", req.ProductName)
	form.Set("product_category", req.ProductCategory)
	form.Set("product_profile", "general")

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.initURL, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return PaymentSession{}, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return PaymentSession{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return PaymentSession{}, fmt.Errorf("gateway init: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Status         string `json:"status"`
		FailedReason   string `json:"failedreason"`
		GatewayPageURL string `json:"GatewayPageURL"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return PaymentSession{}, fmt.Errorf("gateway init: decode response: %w", err)
	}

	if body.Status != "SUCCESS" || body.GatewayPageURL == "" {
		return PaymentSession{}, fmt.Errorf("gateway init: %s: %s", body.Status, body.FailedReason)
	}

	return PaymentSession{
		Status:      body.Status,
		RedirectURL: body.GatewayPageURL,
	}, nil
}
