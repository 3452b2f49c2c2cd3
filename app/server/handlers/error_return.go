package handlers

import (
	"errors"
	"habit-tracker/app/server/types"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/labstack/echo/v4"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return a.msg(c, statusCode, http.StatusText(statusCode))
}

func (a *App) msg(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: message,
	})
}

// invalid 校验失败时按字段返回错误信息
func (a *App) invalid(c echo.Context, err error) error {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return c.JSON(http.StatusBadRequest, errs)
	}

	return a.msg(c, http.StatusBadRequest, err.Error())
}
