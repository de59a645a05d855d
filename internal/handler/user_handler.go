package handler

import (
	"net/http"

	"shineon/internal/config"
	"shineon/internal/middleware"
	repo "shineon/internal/repository"
	"shineon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /users, /allUsers のHTTP
type UserHandler struct {
	cfg      config.Config
	uc       *usecase.UserUsecase
	userRepo repo.UserRepository // AdminRoleGuard用
}

// DI
func NewUserHandler(cfg config.Config, uc *usecase.UserUsecase, userRepo repo.UserRepository) *UserHandler {
	return &UserHandler{cfg: cfg, uc: uc, userRepo: userRepo}
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	authed := middleware.AuthJWT(h.cfg)
	adminOnly := middleware.AdminRoleGuard(h.userRepo)

	e.GET("/users", h.list, authed, adminOnly)
	e.POST("/users", h.create)
	e.GET("/users/admin/:email", h.adminFlag, authed)
	e.GET("/users/client/:email", h.clientFlag, authed)
	e.GET("/allUsers/:role", h.listByRole)
	//ロール昇格はadmin限定にする
	e.PATCH("/users/admin/:id", h.setAdminRole, authed, adminOnly)
}

func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) adminFlag(c echo.Context) error {
	claimEmail, ok := getClaimEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized access"})
	}

	out, err := h.uc.AdminFlag(c.Request().Context(), claimEmail, c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) clientFlag(c echo.Context) error {
	claimEmail, ok := getClaimEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized access"})
	}

	out, err := h.uc.ClientFlag(c.Request().Context(), claimEmail, c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) listByRole(c echo.Context) error {
	out, err := h.uc.ListUsersByRole(c.Request().Context(), c.Param("role"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) setAdminRole(c echo.Context) error {
	out, err := h.uc.SetAdminRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// claimのemailをcontextから取り出す
func getClaimEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(middleware.CtxEmailKey).(string)
	return email, ok && email != ""
}
