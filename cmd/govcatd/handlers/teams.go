package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	apiteams "github.com/lumendata/govcat/pkg/api/types/teams"
	"github.com/lumendata/govcat/pkg/domain/teams"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

func ListTeamsHandler(teams teams.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		byDomain, err := teams.ByDomain(c.Request().Context())
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, slices.Map(byDomain, apiteams.ComposeDomainTeam))
	}
}

func ListTeamMembersHandler(teams teams.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		members, err := teams.AllMembers(c.Request().Context())
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, slices.Map(members, apiteams.ComposeDomainMember))
	}
}
