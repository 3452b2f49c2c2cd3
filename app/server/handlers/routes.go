package handlers

import (
	"habit-tracker/app/server/constants"
	"habit-tracker/app/server/middlewares"
	"habit-tracker/app/server/models"

	"github.com/labstack/echo/v4"
)

// RegisterHandlers 身份解析中间件需要先行挂载在 e 上
func RegisterHandlers(e *echo.Echo, a *App) {
	e.GET(constants.HealthzPath, a.HealthCheck)

	api := e.Group(constants.APIPrefix)
	requireAdmin := middlewares.RequireRole(models.RoleAdmin)

	users := api.Group("/users")
	users.POST("/register", a.AuthRegister)
	users.POST("/login", a.AuthLogin)
	users.GET("", a.UserList, requireAdmin)
	users.GET("/profile", a.ProfileGet, middlewares.RequireIdentity)
	users.PUT("/profile", a.ProfileUpdate, middlewares.RequireIdentity)
	users.GET("/status", a.StatusGet, middlewares.RequireIdentity)
	users.PUT("/status", a.StatusUpdate, middlewares.RequireIdentity)
	users.GET("/:id", a.UserGet, middlewares.RequireIdentity)
	users.DELETE("/:id", a.UserDelete, middlewares.RequireIdentity)
	users.PUT("/:id/role", a.UserRoleUpdate, requireAdmin)
	users.PUT("/:id/status", a.UserStatusUpdate, requireAdmin)

	habits := api.Group("/habits", middlewares.RequireIdentity)
	habits.POST("", a.HabitCreate)
	habits.GET("", a.HabitList)
	habits.POST("/users/:userId", a.HabitCreateForUser)
	habits.GET("/users/:userId", a.HabitListByUser)
	habits.GET("/:id", a.HabitGet)
	habits.DELETE("/:id", a.HabitDelete)

	checkIns := api.Group("/checkins", middlewares.RequireIdentity)
	checkIns.POST("", a.CheckInCreate)
	checkIns.POST("/habits/:habitId", a.CheckInCreateForHabit)
	checkIns.GET("/habit/:id", a.CheckInListByHabit)
	checkIns.DELETE("/:id", a.CheckInDelete)
}
