package handlers

import (
	"errors"
	"habit-tracker/app/server/models"
	"habit-tracker/app/server/repository"
	"habit-tracker/app/server/types"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// loadOwnedHabit 找到习惯并校验归属
func (a *App) loadOwnedHabit(c echo.Context, id uint) (*models.Habit, int) {
	habit, err := a.habits.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, http.StatusNotFound
		}
		a.l.Error("failed to get habit", zap.Uint("id", id), zap.Error(err))
		return nil, http.StatusInternalServerError
	}

	if _, err, statusCode := a.authUser(c, false, &habit.UserID); err != nil {
		a.l.Debug("refused habit access", zap.Uint("id", id), zap.Error(err))
		return nil, statusCode
	}

	return habit, http.StatusOK
}

func (a *App) createHabit(c echo.Context, userID uint) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.HabitRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.invalid(c, err)
	}

	habit := models.Habit{
		UserID:   userID,
		Name:     req.Name,
		GoalType: req.GoalType,
	}
	if err := a.habits.Create(rctx, &habit); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to create habit", zap.Uint("userID", userID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, types.NewHabitResponse(&habit))
}

func (a *App) HabitCreate(c echo.Context) error {
	self, err, statusCode := a.authUser(c, false, nil)
	if err != nil {
		return a.er(c, statusCode)
	}

	return a.createHabit(c, self.ID)
}

func (a *App) HabitCreateForUser(c echo.Context) error {
	userID, ok := a.pathID(c, "userId")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	if _, err, statusCode := a.authUser(c, false, &userID); err != nil {
		return a.er(c, statusCode)
	}

	// 确认用户存在
	if user, statusCode := a.loadUser(c, userID); user == nil {
		return a.er(c, statusCode)
	}

	return a.createHabit(c, userID)
}

func (a *App) listHabits(c echo.Context, userID uint) error {
	habits, err := a.habits.ListByUser(c.Request().Context(), userID)
	if err != nil {
		a.l.Error("failed to list habits", zap.Uint("userID", userID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	res := []types.HabitResponse{}
	for i := range habits {
		res = append(res, types.NewHabitResponse(&habits[i]))
	}

	return c.JSON(http.StatusOK, res)
}

func (a *App) HabitList(c echo.Context) error {
	self, err, statusCode := a.authUser(c, false, nil)
	if err != nil {
		return a.er(c, statusCode)
	}

	return a.listHabits(c, self.ID)
}

func (a *App) HabitListByUser(c echo.Context) error {
	userID, ok := a.pathID(c, "userId")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	if _, err, statusCode := a.authUser(c, false, &userID); err != nil {
		return a.er(c, statusCode)
	}

	return a.listHabits(c, userID)
}

func (a *App) HabitGet(c echo.Context) error {
	if _, err, statusCode := a.authUser(c, false, nil); err != nil {
		return a.er(c, statusCode)
	}

	id, ok := a.pathID(c, "id")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	habit, statusCode := a.loadOwnedHabit(c, id)
	if habit == nil {
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, types.NewHabitResponse(habit))
}

func (a *App) HabitDelete(c echo.Context) error {
	if _, err, statusCode := a.authUser(c, false, nil); err != nil {
		return a.er(c, statusCode)
	}

	id, ok := a.pathID(c, "id")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	if habit, statusCode := a.loadOwnedHabit(c, id); habit == nil {
		return a.er(c, statusCode)
	}

	if err := a.habits.DeleteByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete habit", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
