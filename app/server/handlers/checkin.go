package handlers

import (
	"errors"
	"habit-tracker/app/server/repository"
	"habit-tracker/app/server/types"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) createCheckIn(c echo.Context, habitID uint, req *types.CheckInRequest) error {
	if err := req.Validate(); err != nil {
		return a.invalid(c, err)
	}

	if habit, statusCode := a.loadOwnedHabit(c, habitID); habit == nil {
		return a.er(c, statusCode)
	}

	checkIn, err := req.ToModel(habitID)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	if err = a.checkIns.Create(c.Request().Context(), checkIn); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to create check-in", zap.Uint("habitID", habitID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, types.NewCheckInResponse(checkIn))
}

func (a *App) CheckInCreateForHabit(c echo.Context) error {
	if _, err, statusCode := a.authUser(c, false, nil); err != nil {
		return a.er(c, statusCode)
	}

	habitID, ok := a.pathID(c, "habitId")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	var req types.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	return a.createCheckIn(c, habitID, &req)
}

// CheckInCreate 习惯 ID 在请求体中
func (a *App) CheckInCreate(c echo.Context) error {
	if _, err, statusCode := a.authUser(c, false, nil); err != nil {
		return a.er(c, statusCode)
	}

	var req types.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	if req.HabitID == 0 {
		return a.msg(c, http.StatusBadRequest, "habitId cannot be blank")
	}

	return a.createCheckIn(c, req.HabitID, &req)
}

func (a *App) CheckInListByHabit(c echo.Context) error {
	if _, err, statusCode := a.authUser(c, false, nil); err != nil {
		return a.er(c, statusCode)
	}

	habitID, ok := a.pathID(c, "id")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	if habit, statusCode := a.loadOwnedHabit(c, habitID); habit == nil {
		return a.er(c, statusCode)
	}

	checkIns, err := a.checkIns.ListByHabit(c.Request().Context(), habitID)
	if err != nil {
		a.l.Error("failed to list check-ins", zap.Uint("habitID", habitID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	res := []types.CheckInResponse{}
	for i := range checkIns {
		res = append(res, types.NewCheckInResponse(&checkIns[i]))
	}

	return c.JSON(http.StatusOK, res)
}

func (a *App) CheckInDelete(c echo.Context) error {
	if _, err, statusCode := a.authUser(c, false, nil); err != nil {
		return a.er(c, statusCode)
	}

	id, ok := a.pathID(c, "id")
	if !ok {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	checkIn, err := a.checkIns.FindByID(rctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to get check-in", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 归属跟随习惯
	if habit, statusCode := a.loadOwnedHabit(c, checkIn.HabitID); habit == nil {
		return a.er(c, statusCode)
	}

	if err = a.checkIns.DeleteByID(rctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete check-in", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
