package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shineon/internal/config"
	"shineon/internal/domain/model"
	"shineon/internal/repository"
	"shineon/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// UserRepository モック（handler専用：名前衝突回避）
// =====================

type MockUserRepoForHandler struct {
	mock.Mock
}

func (m *MockUserRepoForHandler) Create(ctx context.Context, user model.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepoForHandler) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepoForHandler) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *MockUserRepoForHandler) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	args := m.Called(ctx, role)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *MockUserRepoForHandler) SetRole(ctx context.Context, id string, role string) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

var _ repository.UserRepository = (*MockUserRepoForHandler)(nil)

// =====================
// helper
// =====================

const testSecret = "test-secret"

func testCfg() config.Config {
	return config.Config{
		JWTSecret:   testSecret,
		FrontendURL: "https://shop.example.com",
	}
}

func makeToken(t *testing.T, email string) string {
	t.Helper()

	claims := jwt.MapClaims{"email": email, "iat": 1, "exp": 9999999999}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func newUserEcho(users repository.UserRepository) *echo.Echo {
	e := echo.New()
	h := NewUserHandler(testCfg(), usecase.NewUserUsecase(users), users)
	h.RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method string, path string, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =====================
// GET /users
// =====================

func TestUserHandler_List_NoToken(t *testing.T) {
	e := newUserEcho(new(MockUserRepoForHandler))

	rec := doJSON(t, e, http.MethodGet, "/users", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_List_NotAdmin(t *testing.T) {
	users := new(MockUserRepoForHandler)
	users.On("FindByEmail", mock.Anything, "carol@example.com").
		Return(model.User{Email: "carol@example.com", Role: "client"}, nil)

	e := newUserEcho(users)
	rec := doJSON(t, e, http.MethodGet, "/users", makeToken(t, "carol@example.com"), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserHandler_List_Admin(t *testing.T) {
	users := new(MockUserRepoForHandler)
	users.On("FindByEmail", mock.Anything, "root@example.com").
		Return(model.User{Email: "root@example.com", Role: "admin"}, nil)
	users.On("ListAll", mock.Anything).
		Return([]model.User{{Email: "root@example.com", Role: "admin"}, {Email: "carol@example.com"}}, nil)

	e := newUserEcho(users)
	rec := doJSON(t, e, http.MethodGet, "/users", makeToken(t, "root@example.com"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 2)
}

// =====================
// POST /users
// =====================

func TestUserHandler_Create_Duplicate(t *testing.T) {
	users := new(MockUserRepoForHandler)
	users.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(model.User{Email: "alice@example.com"}, nil)

	e := newUserEcho(users)
	rec := doJSON(t, e, http.MethodPost, "/users", "", CreateUserRequest{Email: "alice@example.com"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CreateUserOutput
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "user already exists", out.Message)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// =====================
// GET /users/admin/:email
// =====================

// 他人のemailを聞いてもfalseしか返らない
func TestUserHandler_AdminFlag_Mismatch(t *testing.T) {
	users := new(MockUserRepoForHandler)

	e := newUserEcho(users)
	rec := doJSON(t, e, http.MethodGet, "/users/admin/root@example.com", makeToken(t, "carol@example.com"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.AdminFlagResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.False(t, out.Admin)
	users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

// =====================
// PATCH /users/admin/:id
// =====================

// ロール昇格は未認証では叩けない
func TestUserHandler_SetAdminRole_NoToken(t *testing.T) {
	users := new(MockUserRepoForHandler)

	e := newUserEcho(users)
	rec := doJSON(t, e, http.MethodPatch, "/users/admin/65f000000000000000000002", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	users.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_SetAdminRole_Admin(t *testing.T) {
	users := new(MockUserRepoForHandler)
	users.On("FindByEmail", mock.Anything, "root@example.com").
		Return(model.User{Email: "root@example.com", Role: "admin"}, nil)
	users.On("SetRole", mock.Anything, "65f000000000000000000002", "admin").Return(nil)

	e := newUserEcho(users)
	rec := doJSON(t, e, http.MethodPatch, "/users/admin/65f000000000000000000002", makeToken(t, "root@example.com"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	users.AssertExpectations(t)
}

// =====================
// GET /allUsers/:role
// =====================

func TestUserHandler_ListByRole(t *testing.T) {
	users := new(MockUserRepoForHandler)
	users.On("ListByRole", mock.Anything, "client").
		Return([]model.User{{Email: "carol@example.com", Role: "client"}}, nil)

	e := newUserEcho(users)
	rec := doJSON(t, e, http.MethodGet, "/allUsers/client", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}
