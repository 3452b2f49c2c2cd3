package handlers

import (
	"fmt"
	"habit-tracker/app/server/auth"
	"habit-tracker/app/server/models"
	"net/http"

	"github.com/labstack/echo/v4"
)

// authUser 取出当前请求的身份；ownerID 不为空时，只允许本人或管理员访问
func (a *App) authUser(c echo.Context, requireAdminRole bool, ownerID *uint) (*models.User, error, int) {
	user, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return nil, fmt.Errorf("missing identity"), http.StatusUnauthorized
	}

	if user.IsAdmin() {
		return user, nil, http.StatusOK
	}

	// 验证权限
	if requireAdminRole {
		return nil, fmt.Errorf("requires admin role"), http.StatusForbidden
	}

	if ownerID != nil && *ownerID != user.ID {
		return nil, fmt.Errorf("user %d cannot access resources of user %d", user.ID, *ownerID), http.StatusForbidden
	}

	return user, nil, http.StatusOK
}
