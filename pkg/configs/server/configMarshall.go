package server

import (
	"fmt"
	"net"
)

type Marshalled[S any] interface {
	trySeal(string) S
}

// seal marshalled object.
//
// this function CAN CAUSE PANIC if misconfiguration is found.
//
// All types named `pkg/configs/server.XxxMarshall` are `Marshalled[*Xxx]` .
func TrySeal[S any](conf Marshalled[S]) S {
	return conf.trySeal("(root)")
}

type ServerConfigMarshall struct {
	Port             int32               `yaml:"port"`
	Database         string              `yaml:"database"`
	SchemaRepository string              `yaml:"schemaRepository,omitempty"`
	Auth             *AuthConfigMarshall `yaml:"auth"`
}

var _ Marshalled[*ServerConfig] = &ServerConfigMarshall{}

func (s *ServerConfigMarshall) trySeal(path string) *ServerConfig {
	return &ServerConfig{
		port:             required(s.Port, path+".port"),
		database:         required(s.Database, path+".database"),
		schemaRepository: s.SchemaRepository,
		auth:             nonnil(s.Auth, path+".auth").trySeal(path + ".auth"),
	}
}

type AuthConfigMarshall struct {
	EmailHeader    string                       `yaml:"emailHeader,omitempty"`
	NameHeader     string                       `yaml:"nameHeader,omitempty"`
	JwtHeader      string                       `yaml:"jwtHeader,omitempty"`
	JwtSecret      string                       `yaml:"jwtSecret,omitempty"`
	TrustedProxies []string                     `yaml:"trustedProxies"`
	Local          *LocalIdentityConfigMarshall `yaml:"local,omitempty"`
}

func (a *AuthConfigMarshall) trySeal(path string) *AuthConfig {
	emailHeader := a.EmailHeader
	if emailHeader == "" {
		emailHeader = "Cf-Access-Authenticated-User-Email"
	}
	nameHeader := a.NameHeader
	if nameHeader == "" {
		nameHeader = "Cf-Access-Authenticated-User-Name"
	}
	jwtHeader := a.JwtHeader
	if jwtHeader == "" {
		jwtHeader = "Cf-Access-Jwt-Assertion"
	}

	proxies := make([]*net.IPNet, 0, len(a.TrustedProxies))
	for i, cidr := range a.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(fmt.Errorf("%s.trustedProxies[%d] can not be parsed: %w", path, i, err))
		}
		proxies = append(proxies, network)
	}

	var local *LocalIdentityConfig
	if a.Local != nil {
		local = a.Local.trySeal(path + ".local")
	}

	return &AuthConfig{
		emailHeader:    emailHeader,
		nameHeader:     nameHeader,
		jwtHeader:      jwtHeader,
		jwtSecret:      a.JwtSecret,
		trustedProxies: proxies,
		local:          local,
	}
}

type LocalIdentityConfigMarshall struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name,omitempty"`
}

func (l *LocalIdentityConfigMarshall) trySeal(path string) *LocalIdentityConfig {
	return &LocalIdentityConfig{
		email: required(l.Email, path+".email"),
		name:  l.Name,
	}
}

func nonnil[T any](v *T, path string) *T {
	if v == nil {
		panic(path + " is required")
	}
	return v
}

func required[T comparable](v T, path string) T {
	if v == *new(T) {
		panic(path + " is required")
	}
	return v
}
