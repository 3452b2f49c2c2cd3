package handlers

import (
	"errors"
	"habit-tracker/app/server/auth"
	"habit-tracker/app/server/models"
	"habit-tracker/app/server/types"
	"habit-tracker/app/server/utils"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.invalid(c, err)
	}

	token, err := a.authn.Login(rctx, req.EmailAddress, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials),
			errors.Is(err, auth.ErrDisabled),
			errors.Is(err, auth.ErrLocked):
			// 统一返回 401 ，但保留具体原因
			a.l.Info("login rejected", zap.String("principal", req.EmailAddress), zap.Error(err))
			return a.msg(c, http.StatusUnauthorized, err.Error())
		default:
			a.l.Error("failed to login", zap.String("principal", req.EmailAddress), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 返回
	return c.JSON(http.StatusOK, &types.TokenResponse{
		Token: token,
	})
}

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.RegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.invalid(c, err)
	}

	// 只有管理员可以直接创建管理员
	if req.Role == models.RoleAdmin {
		if _, err, statusCode := a.authUser(c, true, nil); err != nil {
			a.l.Info("refused to register admin", zap.String("email", req.Email), zap.Error(err))
			return a.er(c, statusCode)
		}
	}

	user := models.User{
		Email:         req.Email,
		Username:      req.UserName,
		Role:          req.Role,
		Enabled:       utils.Deref(req.Enabled, true),
		AccountLocked: !utils.Deref(req.AccountNonLocked, true),
		Profile: models.Profile{
			FirstName: req.Profile.FirstName,
			LastName:  req.Profile.LastName,
			Bio:       req.Profile.Bio,
		},
	}

	if err := a.authn.Register(rctx, &user, req.Password); err != nil {
		if errors.Is(err, auth.ErrAlreadyExists) {
			return a.msg(c, http.StatusConflict, err.Error())
		}
		a.l.Error("failed to register user", zap.String("email", req.Email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, types.NewUserResponse(&user))
}
