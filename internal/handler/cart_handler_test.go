package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"shineon/internal/domain/model"
	"shineon/internal/repository"
	"shineon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartRepoForHandler struct {
	mock.Mock
}

func (m *MockCartRepoForHandler) Create(ctx context.Context, entry model.CartEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

func (m *MockCartRepoForHandler) ListByEmail(ctx context.Context, email string) ([]model.CartEntry, error) {
	args := m.Called(ctx, email)
	es, _ := args.Get(0).([]model.CartEntry)
	return es, args.Error(1)
}

func (m *MockCartRepoForHandler) FindByID(ctx context.Context, id string) (model.CartEntry, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(model.CartEntry)
	return e, args.Error(1)
}

func (m *MockCartRepoForHandler) DeleteByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

var _ repository.CartRepository = (*MockCartRepoForHandler)(nil)

func newCartEcho(cart repository.CartRepository) *echo.Echo {
	e := echo.New()
	h := NewCartHandler(testCfg(), usecase.NewCartUsecase(cart))
	h.RegisterRoutes(e)
	return e
}

// 本人のカートは一覧できる
func TestCartHandler_List_Own(t *testing.T) {
	cart := new(MockCartRepoForHandler)
	cart.On("ListByEmail", mock.Anything, "alice@example.com").
		Return([]model.CartEntry{{Email: "alice@example.com", Name: "Gold Ring"}}, nil)

	e := newCartEcho(cart)
	rec := doJSON(t, e, http.MethodGet, "/cart?email=alice@example.com", makeToken(t, "alice@example.com"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.CartEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

// 他人のemailは403
func TestCartHandler_List_OtherEmail(t *testing.T) {
	cart := new(MockCartRepoForHandler)

	e := newCartEcho(cart)
	rec := doJSON(t, e, http.MethodGet, "/cart?email=bob@example.com", makeToken(t, "alice@example.com"), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	cart.AssertNotCalled(t, "ListByEmail", mock.Anything, mock.Anything)
}

// トークン無しは401
func TestCartHandler_List_NoToken(t *testing.T) {
	e := newCartEcho(new(MockCartRepoForHandler))

	rec := doJSON(t, e, http.MethodGet, "/cart?email=alice@example.com", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// 追加は認証なしの素通し
func TestCartHandler_Add(t *testing.T) {
	cart := new(MockCartRepoForHandler)
	cart.On("Create", mock.Anything, mock.Anything).
		Return("65f000000000000000000005", nil)

	e := newCartEcho(cart)
	rec := doJSON(t, e, http.MethodPost, "/cart", "", model.CartEntry{
		Email: "alice@example.com", ProductID: "p1", Name: "Gold Ring",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.AddCartOutput
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "65f000000000000000000005", out.InsertedID)
}

func TestCartHandler_Detail_NotFound(t *testing.T) {
	cart := new(MockCartRepoForHandler)
	cart.On("FindByID", mock.Anything, "ffffffffffffffffffffffff").
		Return(model.CartEntry{}, repository.ErrNotFound)

	e := newCartEcho(cart)
	rec := doJSON(t, e, http.MethodGet, "/cart/ffffffffffffffffffffffff", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_Delete(t *testing.T) {
	cart := new(MockCartRepoForHandler)
	cart.On("DeleteByID", mock.Anything, "65f000000000000000000003").
		Return(int64(1), nil)

	e := newCartEcho(cart)
	rec := doJSON(t, e, http.MethodDelete, "/cart/65f000000000000000000003", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.DeleteCartOutput
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, int64(1), out.DeletedCount)
}
