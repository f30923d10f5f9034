package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/lumendata/govcat/pkg/api/types/errors"
	apiusers "github.com/lumendata/govcat/pkg/api/types/users"
	"github.com/lumendata/govcat/pkg/auth"
	kdbuser "github.com/lumendata/govcat/pkg/domain/user/db"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

func ListUsersHandler(dbUsers kdbuser.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := dbUsers.List(c.Request().Context())
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, slices.Map(users, apiusers.Compose))
	}
}

func WhoamiHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := auth.From(c)
		if !ok {
			return apierr.Unauthorized("no identity is bound to this request")
		}
		return c.JSON(http.StatusOK, apiusers.ComposeIdentity(identity))
	}
}
