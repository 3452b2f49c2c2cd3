package middlewares

import (
	"habit-tracker/app/server/auth"
	"habit-tracker/app/server/constants"
	"habit-tracker/app/server/models"
	"net/http"

	"github.com/labstack/echo/v4"
)

type message struct {
	Message string `json:"message"`
}

// Identity 解析令牌并把身份挂到请求 context 上，失败时按匿名继续处理
func Identity(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(resolver.Attach(req.Context(), req.Header.Get(constants.AuthHeader))))

			// 继续处理
			return next(c)
		}
	}
}

// RequireIdentity 拒绝匿名请求
func RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := auth.FromContext(c.Request().Context()); !ok {
			return c.JSON(http.StatusUnauthorized, &message{Message: http.StatusText(http.StatusUnauthorized)})
		}

		return next(c)
	}
}

func RequireRole(role models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := auth.FromContext(c.Request().Context())
			if !ok {
				return c.JSON(http.StatusUnauthorized, &message{Message: http.StatusText(http.StatusUnauthorized)})
			}
			if user.Role != role {
				return c.JSON(http.StatusForbidden, &message{Message: http.StatusText(http.StatusForbidden)})
			}

			return next(c)
		}
	}
}
