package router

import (
	"github.com/labstack/echo/v4"

	"ad-board/internal/cache"
	"ad-board/internal/database"
	"ad-board/internal/handler"
	"ad-board/internal/handler/ads"
	"ad-board/internal/handler/users"
	"ad-board/internal/middleware"
)

// Setup registers all routes. Ad reads are public; ad mutations authenticate
// name/password headers on every call. The unknown-user 401 message differs
// between create and update/delete, matching the middleware argument.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	e.GET("/ping", handler.PingHandler(db, rdb))

	e.POST("/user", users.CreateUserHandler(db))
	e.GET("/user/:user_id", users.GetUserHandler(db))
	e.PATCH("/user/:user_id", users.UpdateUserHandler(db))
	e.DELETE("/user/:user_id", users.DeleteUserHandler(db))

	e.GET("/ads/:ad_id", ads.GetAdHandler(db))
	e.POST("/ads", ads.CreateAdHandler(db), middleware.RequireCredentials(db, "wrong user"))
	e.PATCH("/ads/:ad_id", ads.UpdateAdHandler(db), middleware.RequireCredentials(db, "user not found"))
	e.DELETE("/ads/:ad_id", ads.DeleteAdHandler(db), middleware.RequireCredentials(db, "user not found"))
}
