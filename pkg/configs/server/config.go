package server

import (
	"net"
)

type ServerConfig struct {
	port             int32
	database         string
	schemaRepository string
	auth             *AuthConfig
}

func (c *ServerConfig) Port() int32 {
	return c.port
}

// Connection string for database.
func (c *ServerConfig) Database() string {
	return c.database
}

// Directory holding versioned schema definitions.
func (c *ServerConfig) SchemaRepository() string {
	return c.schemaRepository
}

func (c *ServerConfig) Auth() *AuthConfig {
	return c.auth
}

// Configuration for the identity boundary in front of the API.
//
// The server trusts identity headers set by an authenticating proxy
// (Cloudflare Access), but only when the request arrives from one of
// the trusted proxy networks.
type AuthConfig struct {
	emailHeader    string
	nameHeader     string
	jwtHeader      string
	jwtSecret      string
	trustedProxies []*net.IPNet
	local          *LocalIdentityConfig
}

// Header carrying the authenticated user's email. default = "Cf-Access-Authenticated-User-Email"
func (a *AuthConfig) EmailHeader() string {
	return a.emailHeader
}

// Header carrying the authenticated user's display name. default = "Cf-Access-Authenticated-User-Name"
func (a *AuthConfig) NameHeader() string {
	return a.nameHeader
}

// Header carrying the proxy's JWT assertion. default = "Cf-Access-Jwt-Assertion"
func (a *AuthConfig) JwtHeader() string {
	return a.jwtHeader
}

// HMAC secret for verifying the JWT assertion. Empty disables
// verification and the email header is trusted as-is.
func (a *AuthConfig) JwtSecret() string {
	return a.jwtSecret
}

// Networks the identity headers are accepted from.
func (a *AuthConfig) TrustedProxies() []*net.IPNet {
	return a.trustedProxies
}

// Fallback identity for deployments without a proxy. nil = disabled.
func (a *AuthConfig) Local() *LocalIdentityConfig {
	return a.local
}

type LocalIdentityConfig struct {
	email string
	name  string
}

func (l *LocalIdentityConfig) Email() string {
	return l.email
}

func (l *LocalIdentityConfig) Name() string {
	return l.name
}
