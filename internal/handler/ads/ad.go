package ads

import (
	"errors"
	"net/http"
	"strconv"

	"ad-board/internal/api"
	"ad-board/internal/database"
	"ad-board/internal/httperr"
	"ad-board/internal/middleware"
	"ad-board/internal/model"
	"ad-board/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getAdByID = store.GetAdByID
	createAd  = store.CreateAd
	updateAd  = store.UpdateAd
	deleteAd  = store.DeleteAd
)

func adID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("ad_id"))
	if err != nil {
		return 0, httperr.BadRequest("invalid ad ID")
	}
	return id, nil
}

// currentUser returns the user stored by middleware.RequireCredentials.
// unknownUserMessage matches the 401 body the route's middleware would use.
func currentUser(c echo.Context, unknownUserMessage string) (*model.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*model.User)
	if !ok {
		return nil, httperr.Unauthorized(unknownUserMessage)
	}
	return user, nil
}

// @Summary     Get an ad by ID
// @Tags        ads
// @Produce     json
// @Param       ad_id path int true "ad ID"
// @Success     200 {object} api.AdResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /ads/{ad_id} [get]
func GetAdHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := adID(c)
		if err != nil {
			return err
		}
		ad, err := getAdByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httperr.NotFound("ads not found")
			}
			return err
		}
		return c.JSON(http.StatusOK, api.AdResponse{
			ID:           ad.ID,
			Title:        ad.Title,
			Description:  ad.Description,
			CreationTime: ad.CreatedAt,
			UserID:       ad.UserID,
		})
	}
}

// @Summary     Create an ad
// @Description The owner is always the authenticated user from the
// @Description name/password headers, regardless of the request body.
// @Tags        ads
// @Accept      json
// @Produce     json
// @Param       body body api.CreateAdRequest true "ad fields"
// @Success     200 {object} api.IDResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /ads [post]
func CreateAdHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c, "wrong user")
		if err != nil {
			return err
		}

		var req api.CreateAdRequest
		if err := c.Bind(&req); err != nil {
			return httperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return httperr.Validation(err)
		}

		ad, err := createAd(c.Request().Context(), db, &model.Ad{
			Title:       req.Title,
			Description: req.Description,
			UserID:      user.ID,
		})
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, api.IDResponse{ID: ad.ID})
	}
}

// @Summary     Partially update an ad
// @Description Only the owner may update; the response's name field carries
// @Description the updated title.
// @Tags        ads
// @Accept      json
// @Produce     json
// @Param       ad_id path int true "ad ID"
// @Param       body body api.UpdateAdRequest true "fields to change"
// @Success     200 {object} api.AdUpdatedResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /ads/{ad_id} [patch]
func UpdateAdHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c, "user not found")
		if err != nil {
			return err
		}
		id, err := adID(c)
		if err != nil {
			return err
		}

		var req api.UpdateAdRequest
		if err := c.Bind(&req); err != nil {
			return httperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return httperr.Validation(err)
		}

		ad, err := getAdByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httperr.NotFound("ads not found")
			}
			return err
		}
		if ad.UserID != user.ID {
			return httperr.Unauthorized("user has not access")
		}

		updated, err := updateAd(c.Request().Context(), db, id, req.Title, req.Description)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httperr.NotFound("ads not found")
			}
			return err
		}

		return c.JSON(http.StatusOK, api.AdUpdatedResponse{ID: updated.ID, Name: updated.Title})
	}
}

// @Summary     Delete an ad
// @Description Only the owner may delete.
// @Tags        ads
// @Produce     json
// @Param       ad_id path int true "ad ID"
// @Success     200 {object} api.StatusResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /ads/{ad_id} [delete]
func DeleteAdHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c, "user not found")
		if err != nil {
			return err
		}
		id, err := adID(c)
		if err != nil {
			return err
		}

		ad, err := getAdByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httperr.NotFound("ads not found")
			}
			return err
		}
		if ad.UserID != user.ID {
			return httperr.Unauthorized("user has not access")
		}

		if err := deleteAd(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httperr.NotFound("ads not found")
			}
			return err
		}

		return c.JSON(http.StatusOK, api.StatusResponse{Status: "deleted"})
	}
}
