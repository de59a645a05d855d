package middleware

import (
	"errors"
	"net/http"

	repo "shineon/internal/repository"

	"github.com/labstack/echo/v4"
)

// AdminRoleGuard はclaimのemailでユーザーを引き、roleがadminのときだけ通す。
// ロールはキャッシュせず、保護されたリクエストごとにストアへ問い合わせる。
func AdminRoleGuard(users repo.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get(CtxEmailKey).(string)
			if !ok || email == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized access"))
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if errors.Is(err, repo.ErrNotFound) {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			//admin以外は拒否
			if user.Role != "admin" {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
			}

			return next(c)
		}
	}
}
