package handlers

import (
	"errors"
	"habit-tracker/app/server/models"
	"habit-tracker/app/server/repository"
	"habit-tracker/app/server/types"
	"habit-tracker/app/server/utils"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// loadUser 从存储中重新读取，context 中的身份可能来自缓存
func (a *App) loadUser(c echo.Context, id uint) (*models.User, int) {
	user, err := a.users.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, http.StatusNotFound
		}
		a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		return nil, http.StatusInternalServerError
	}

	return user, http.StatusOK
}

func (a *App) pathID(c echo.Context, name string) (uint, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (a *App) UserList(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true, nil)
	if err != nil {
		a.l.Debug("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	params, err := a.bindPagination(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	showAll, offset, limit := a.parsePagination(params)
	users, usersCount, err := a.users.List(c.Request().Context(), offset, limit)
	if err != nil {
		a.l.Error("failed to list users", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resUsers := []types.UserResponse{}
	for i := range users {
		resUsers = append(resUsers, types.NewUserResponse(&users[i]))
	}

	if showAll {
		limit = len(resUsers)
	}

	return c.JSON(http.StatusOK, &types.UserListResponse{
		Limit:   limit,
		PageMax: a.calcMaxPage(usersCount, showAll, limit),
		List:    resUsers,
	})
}

func (a *App) UserGet(c echo.Context) error {
	id, ok := a.pathID(c, "id")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	// 抓取 user 信息（认证）
	if _, err, statusCode := a.authUser(c, false, &id); err != nil {
		a.l.Debug("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	user, statusCode := a.loadUser(c, id)
	if user == nil {
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, types.NewUserResponse(user))
}

func (a *App) UserDelete(c echo.Context) error {
	id, ok := a.pathID(c, "id")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	// 抓取 user 信息（认证）
	if _, err, statusCode := a.authUser(c, false, &id); err != nil {
		a.l.Debug("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	user, statusCode := a.loadUser(c, id)
	if user == nil {
		return a.er(c, statusCode)
	}

	// 删除用户
	if err := a.users.DeleteByID(rctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.cache.Invalidate(rctx, user.Email)

	return c.NoContent(http.StatusNoContent)
}

func (a *App) ProfileGet(c echo.Context) error {
	self, err, statusCode := a.authUser(c, false, nil)
	if err != nil {
		return a.er(c, statusCode)
	}

	user, statusCode := a.loadUser(c, self.ID)
	if user == nil {
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, types.NewProfileResponse(&user.Profile))
}

func (a *App) ProfileUpdate(c echo.Context) error {
	self, err, statusCode := a.authUser(c, false, nil)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ProfileInput
	if err = c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	user, statusCode := a.loadUser(c, self.ID)
	if user == nil {
		return a.er(c, statusCode)
	}

	// 只覆盖非空字段
	updated := user.Profile
	if req.FirstName != "" {
		updated.FirstName = req.FirstName
	}
	if req.LastName != "" {
		updated.LastName = req.LastName
	}
	if req.Bio != "" {
		updated.Bio = req.Bio
	}
	if updated.SameAs(user.Profile) {
		return a.msg(c, http.StatusConflict, "The profile is already up to date.")
	}

	updated.UserID = user.ID
	if err = a.users.UpdateProfile(rctx, &updated); err != nil {
		a.l.Error("failed to update profile", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.cache.Invalidate(rctx, user.Email)

	return c.JSON(http.StatusOK, types.NewProfileResponse(&updated))
}

func (a *App) StatusGet(c echo.Context) error {
	self, err, statusCode := a.authUser(c, false, nil)
	if err != nil {
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, types.NewStatusResponse(self))
}

// StatusUpdate 修改当前身份的状态
func (a *App) StatusUpdate(c echo.Context) error {
	self, err, statusCode := a.authUser(c, false, nil)
	if err != nil {
		return a.er(c, statusCode)
	}

	return a.updateStatus(c, self.ID)
}

// UserStatusUpdate 管理员修改其他身份的状态
func (a *App) UserStatusUpdate(c echo.Context) error {
	if _, err, statusCode := a.authUser(c, true, nil); err != nil {
		return a.er(c, statusCode)
	}

	id, ok := a.pathID(c, "id")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	return a.updateStatus(c, id)
}

func (a *App) updateStatus(c echo.Context, id uint) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.StatusRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.invalid(c, err)
	}

	user, statusCode := a.loadUser(c, id)
	if user == nil {
		return a.er(c, statusCode)
	}

	user.Enabled = *req.Enabled
	user.AccountLocked = !*req.AccountNonLocked

	if err := a.users.Update(rctx, user); err != nil {
		a.l.Error("failed to update user status", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.cache.Invalidate(rctx, user.Email)

	return c.JSON(http.StatusOK, types.NewStatusResponse(user))
}

func (a *App) UserRoleUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	if _, err, statusCode := a.authUser(c, true, nil); err != nil {
		return a.er(c, statusCode)
	}

	id, ok := a.pathID(c, "id")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.RoleRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.invalid(c, err)
	}

	user, statusCode := a.loadUser(c, id)
	if user == nil {
		return a.er(c, statusCode)
	}

	user.Role = req.Role
	if err := a.users.Update(rctx, user); err != nil {
		a.l.Error("failed to update user role", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.cache.Invalidate(rctx, user.Email)

	return c.JSON(http.StatusOK, types.NewUserResponse(user))
}
