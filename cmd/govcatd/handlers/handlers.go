// Package handlers wires the catalog repositories to the HTTP API.
//
// Handlers convert wire requests into domain specs and deltas, call
// the repository, and map the domain error taxonomy onto HTTP: invalid
// input is 400, a missing row is 404, anything else is 500 with the
// cause kept server-side.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	apierr "github.com/lumendata/govcat/pkg/api/types/errors"
	"github.com/lumendata/govcat/pkg/domain"
)

// Created is the response body of every create endpoint.
type Created struct {
	Id string `json:"id"`
}

func decode[R any](c echo.Context) (R, error) {
	req := new(R)

	ctyp := c.Request().Header.Get("content-type")
	if mime, _, _ := strings.Cut(strings.ToLower(ctyp), ";"); mime != "application/json" {
		return *req, apierr.BadRequest(
			"unexpected content type. it should be application/json", nil,
		)
	}
	if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil {
		return *req, apierr.BadRequest("can not understand the requested json", err)
	}
	return *req, nil
}

func errorFor(err error) error {
	switch {
	case errors.Is(err, domain.ErrMissing):
		return apierr.NotFound()
	case errors.Is(err, domain.ErrInvalid):
		return apierr.BadRequest(err.Error(), err)
	default:
		return apierr.InternalServerError(err)
	}
}

// addChildHandler is the shared shape of every "attach a child to a
// parent" endpoint: decode, convert, insert, report the new id.
func addChildHandler[R any, S any](
	paramKey string,
	convert func(R) S,
	add func(context.Context, string, S) (string, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := decode[R](c)
		if err != nil {
			return err
		}

		id, err := add(c.Request().Context(), c.Param(paramKey), convert(req))
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusCreated, Created{Id: id})
	}
}

// updateChildHandler is the shared shape of every child partial
// update.
func updateChildHandler[R any, D any](
	paramKey string,
	convert func(R) D,
	update func(context.Context, string, D) error,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := decode[R](c)
		if err != nil {
			return err
		}

		if err := update(c.Request().Context(), c.Param(paramKey), convert(req)); err != nil {
			return errorFor(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// deleteChildHandler is the shared shape of every child delete. The
// delete is idempotent: removing an id that is already gone succeeds.
func deleteChildHandler(
	paramKey string,
	remove func(context.Context, string) error,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := remove(c.Request().Context(), c.Param(paramKey)); err != nil {
			return errorFor(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
