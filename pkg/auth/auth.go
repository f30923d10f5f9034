// Package auth resolves the caller's identity from headers set by an
// authenticating proxy (Cloudflare Access) in front of the API.
//
// The identity headers are only honored when the request's peer
// address belongs to a trusted proxy network. When an HMAC secret is
// configured the proxy's JWT assertion is verified too, and its email
// claim must match the header.
package auth

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	apierr "github.com/lumendata/govcat/pkg/api/types/errors"
	kconf "github.com/lumendata/govcat/pkg/configs/server"
	"github.com/lumendata/govcat/pkg/domain"
	kuser "github.com/lumendata/govcat/pkg/domain/user/db"
)

const identityKey = "govcat/identity"

var ErrBadAssertion = errors.New("assertion does not verify")

// From returns the identity resolved by the middleware for this
// request.
func From(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// AccessClaims is the subset of the Cloudflare Access application
// token this server inspects.
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Middleware returns an echo middleware resolving the caller's
// identity. Each resolved identity is upserted into users so the
// platform user list tracks who has actually been seen.
//
// Requests without a resolvable identity are rejected with 401 and
// never reach the handlers.
func Middleware(conf *kconf.AuthConfig, users kuser.UserInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := resolve(conf, c)
			if err != nil {
				return err
			}

			if err := users.Upsert(c.Request().Context(), identity); err != nil {
				return apierr.InternalServerError(err)
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

func resolve(conf *kconf.AuthConfig, c echo.Context) (domain.Identity, error) {
	if fromTrustedProxy(conf, c.Request().RemoteAddr) {
		email := c.Request().Header.Get(conf.EmailHeader())
		if email != "" {
			if secret := conf.JwtSecret(); secret != "" {
				assertion := c.Request().Header.Get(conf.JwtHeader())
				if err := verifyAssertion(secret, assertion, email); err != nil {
					return domain.Identity{}, apierr.Unauthorized("identity assertion does not verify")
				}
			}

			identity := domain.Identity{
				Email:  email,
				Source: domain.SourceCloudflare,
			}
			if name := c.Request().Header.Get(conf.NameHeader()); name != "" {
				identity.Name = &name
			}
			if err := identity.Validate(); err != nil {
				return domain.Identity{}, apierr.Unauthorized("identity headers are malformed")
			}
			return identity, nil
		}
	}

	if local := conf.Local(); local != nil {
		identity := domain.Identity{
			Email:  local.Email(),
			Source: domain.SourceLocal,
		}
		if name := local.Name(); name != "" {
			identity.Name = &name
		}
		return identity, nil
	}

	return domain.Identity{}, apierr.Unauthorized("no identity found for this request")
}

func fromTrustedProxy(conf *kconf.AuthConfig, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	peer := net.ParseIP(host)
	if peer == nil {
		return false
	}
	for _, network := range conf.TrustedProxies() {
		if network.Contains(peer) {
			return true
		}
	}
	return false
}

func verifyAssertion(secret string, assertion string, email string) error {
	if assertion == "" {
		return fmt.Errorf("%w: no assertion", ErrBadAssertion)
	}

	claims := &AccessClaims{}
	_, err := jwt.ParseWithClaims(
		assertion, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return errors.Join(ErrBadAssertion, err)
	}

	if !strings.EqualFold(claims.Email, email) {
		return fmt.Errorf("%w: email claim mismatch", ErrBadAssertion)
	}
	return nil
}
