package users

import (
	"errors"
	"net/http"
	"strconv"

	"ad-board/internal/api"
	"ad-board/internal/database"
	"ad-board/internal/httperr"
	"ad-board/internal/model"
	"ad-board/internal/service"
	"ad-board/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
	getUserByID  = store.GetUserByID
	updateUser   = store.UpdateUser
	deleteUser   = store.DeleteUser
)

func userID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return 0, httperr.BadRequest("invalid user ID")
	}
	return id, nil
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /user/{user_id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userID(c)
		if err != nil {
			return err
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httperr.NotFound("user not found")
			}
			return err
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			ID:           user.ID,
			Name:         user.Name,
			CreationTime: user.CreatedAt,
		})
	}
}

// @Summary     Register a new user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.CreateUserRequest true "credentials"
// @Success     200 {object} api.IDResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /user [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return httperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return httperr.Validation(err)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return err
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return httperr.Conflict("user already exist")
			}
			return err
		}

		return c.JSON(http.StatusOK, api.IDResponse{ID: user.ID})
	}
}

// @Summary     Partially update a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int true "user ID"
// @Param       body body api.UpdateUserRequest true "fields to change"
// @Success     200 {object} api.IDResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /user/{user_id} [patch]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userID(c)
		if err != nil {
			return err
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return httperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return httperr.Validation(err)
		}

		passwordHash := req.Password
		if req.Password != nil {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return err
			}
			passwordHash = &hash
		}

		user, err := updateUser(c.Request().Context(), db, id, req.Name, passwordHash)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				return httperr.NotFound("user not found")
			case errors.Is(err, store.ErrDuplicate):
				return httperr.Conflict("user already exist")
			}
			return err
		}

		return c.JSON(http.StatusOK, api.IDResponse{ID: user.ID})
	}
}

// @Summary     Delete a user
// @Tags        users
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {object} api.StatusResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /user/{user_id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userID(c)
		if err != nil {
			return err
		}
		if _, err := getUserByID(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httperr.NotFound("user not found")
			}
			return err
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httperr.NotFound("user not found")
			}
			return err
		}
		return c.JSON(http.StatusOK, api.StatusResponse{Status: "deleted"})
	}
}
