package auth_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	testhttp "github.com/lumendata/govcat/internal/testutils/http"
	"github.com/lumendata/govcat/pkg/auth"
	kconf "github.com/lumendata/govcat/pkg/configs/server"
	"github.com/lumendata/govcat/pkg/domain"
	mockuser "github.com/lumendata/govcat/pkg/domain/user/db/mock"
	"github.com/lumendata/govcat/pkg/utils/try"
)

func authConfig(jwtSecret string, local *kconf.LocalIdentityConfigMarshall) *kconf.AuthConfig {
	return kconf.TrySeal[*kconf.AuthConfig](&kconf.AuthConfigMarshall{
		JwtSecret:      jwtSecret,
		TrustedProxies: []string{"10.0.0.0/8"},
		Local:          local,
	})
}

func withPeer(addr string) testhttp.RequestOption {
	return func(req *http.Request) *http.Request {
		req.RemoteAddr = addr
		return req
	}
}

func invoke(
	t *testing.T,
	conf *kconf.AuthConfig,
	users *mockuser.UserInterface,
	reqopts ...testhttp.RequestOption,
) (domain.Identity, bool, error) {
	t.Helper()

	e := echo.New()
	ctx, _ := testhttp.Get(e, "/api/whoami/", reqopts...)

	var seen domain.Identity
	var resolved bool
	handler := auth.Middleware(conf, users)(func(c echo.Context) error {
		seen, resolved = auth.From(c)
		return nil
	})
	err := handler(ctx)
	return seen, resolved, err
}

func TestMiddleware_TrustedProxyHeaders(t *testing.T) {
	conf := authConfig("", nil)

	users := mockuser.NewUserInterface()
	users.Impl.Upsert = func(_ context.Context, identity domain.Identity) error {
		if identity.Email != "alice@example.com" {
			t.Errorf("unexpected upsert: %+v", identity)
		}
		return nil
	}

	identity, resolved, err := invoke(
		t, conf, users,
		withPeer("10.1.2.3:50000"),
		testhttp.WithHeader("Cf-Access-Authenticated-User-Email", "alice@example.com"),
		testhttp.WithHeader("Cf-Access-Authenticated-User-Name", "Alice"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resolved {
		t.Fatal("identity is not stashed in the request context")
	}
	if identity.Email != "alice@example.com" || identity.Source != domain.SourceCloudflare {
		t.Errorf("unexpected identity: %+v", identity)
	}
	if identity.Name == nil || *identity.Name != "Alice" {
		t.Errorf("unexpected name: %v", identity.Name)
	}
	if len(users.Calls.Upsert) != 1 {
		t.Errorf("unexpected upsert calls: %d", len(users.Calls.Upsert))
	}
}

func TestMiddleware_UntrustedPeerIgnoresHeaders(t *testing.T) {
	conf := authConfig("", nil)
	users := mockuser.NewUserInterface()

	_, _, err := invoke(
		t, conf, users,
		withPeer("203.0.113.7:443"),
		testhttp.WithHeader("Cf-Access-Authenticated-User-Email", "mallory@example.com"),
	)

	var herr *echo.HTTPError
	if !errors.As(err, &herr) || herr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if len(users.Calls.Upsert) != 0 {
		t.Errorf("no user should be upserted: %d calls", len(users.Calls.Upsert))
	}
}

func TestMiddleware_LocalFallback(t *testing.T) {
	conf := authConfig("", &kconf.LocalIdentityConfigMarshall{
		Email: "dev@example.com", Name: "Local Developer",
	})
	users := mockuser.NewUserInterface()
	users.Impl.Upsert = func(context.Context, domain.Identity) error { return nil }

	identity, _, err := invoke(t, conf, users, withPeer("203.0.113.7:443"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Email != "dev@example.com" || identity.Source != domain.SourceLocal {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

func TestMiddleware_JwtAssertion(t *testing.T) {
	const secret = "fake-hmac-secret"
	conf := authConfig(secret, nil)

	sign := func(t *testing.T, secret string, email string) string {
		t.Helper()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.AccessClaims{
			Email: email,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		return try.To(token.SignedString([]byte(secret))).OrFatal(t)
	}

	for name, testcase := range map[string]struct {
		assertion func(t *testing.T) string
		wantOk    bool
	}{
		"a valid assertion passes": {
			assertion: func(t *testing.T) string { return sign(t, secret, "alice@example.com") },
			wantOk:    true,
		},
		"email claim in different case passes": {
			assertion: func(t *testing.T) string { return sign(t, secret, "Alice@Example.COM") },
			wantOk:    true,
		},
		"a missing assertion is rejected": {
			assertion: func(*testing.T) string { return "" },
		},
		"a wrong signature is rejected": {
			assertion: func(t *testing.T) string { return sign(t, "other-secret", "alice@example.com") },
		},
		"an email claim mismatch is rejected": {
			assertion: func(t *testing.T) string { return sign(t, secret, "bob@example.com") },
		},
	} {
		t.Run(name, func(t *testing.T) {
			users := mockuser.NewUserInterface()
			users.Impl.Upsert = func(context.Context, domain.Identity) error { return nil }

			opts := []testhttp.RequestOption{
				withPeer("10.1.2.3:50000"),
				testhttp.WithHeader("Cf-Access-Authenticated-User-Email", "alice@example.com"),
			}
			if assertion := testcase.assertion(t); assertion != "" {
				opts = append(opts, testhttp.WithHeader("Cf-Access-Jwt-Assertion", assertion))
			}

			_, _, err := invoke(t, conf, users, opts...)

			if testcase.wantOk {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var herr *echo.HTTPError
			if !errors.As(err, &herr) || herr.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %v", err)
			}
		})
	}
}

func TestMiddleware_UpsertFailure(t *testing.T) {
	conf := authConfig("", &kconf.LocalIdentityConfigMarshall{Email: "dev@example.com"})
	users := mockuser.NewUserInterface()
	users.Impl.Upsert = func(context.Context, domain.Identity) error {
		return errors.New("fake error")
	}

	_, _, err := invoke(t, conf, users, withPeer("203.0.113.7:443"))

	var herr *echo.HTTPError
	if !errors.As(err, &herr) || herr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
}
