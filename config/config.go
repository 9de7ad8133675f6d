// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppConfig is the full runtime configuration, loaded once at startup.
type AppConfig struct {
	Server      ServerConfig      `envPrefix:"SERVER_"`
	Auth        AuthConfig        `envPrefix:"AUTH_"`
	Persistence PersistenceConfig `envPrefix:"DB_"`
	Admin       AdminConfig       `envPrefix:"ADMIN_"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port         int    `env:"PORT" envDefault:"5000"`
	AllowOrigins string `env:"ALLOW_ORIGINS" envDefault:"*"`
}

// Address returns the listen address for the HTTP server.
func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

// AuthConfig controls token signing and the authentication gate.
type AuthConfig struct {
	SigningKey      string   `env:"SIGNING_KEY,required"`
	SigningMethod   string   `env:"SIGNING_METHOD" envDefault:"HS256"`
	ContextKey      string   `env:"CONTEXT_KEY" envDefault:"identity"`
	TokenExpiration int      `env:"TOKEN_EXPIRATION" envDefault:"24"`
	AuthScheme      string   `env:"SCHEME" envDefault:"Bearer"`
	Issuer          string   `env:"ISSUER" envDefault:"task-manager"`
	Audience        []string `env:"AUDIENCE" envDefault:"task-manager"`
}

func (a AuthConfig) GetSigningKey() string    { return a.SigningKey }
func (a AuthConfig) GetSigningMethod() string { return a.SigningMethod }
func (a AuthConfig) GetContextKey() string    { return a.ContextKey }
func (a AuthConfig) GetTokenExpiration() int  { return a.TokenExpiration }
func (a AuthConfig) GetAuthScheme() string    { return a.AuthScheme }
func (a AuthConfig) GetIssuer() string        { return a.Issuer }
func (a AuthConfig) GetAudience() []string    { return a.Audience }

// PersistenceConfig controls the database connection.
type PersistenceConfig struct {
	DSN string `env:"DSN" envDefault:"file:tasks.db?cache=shared&_pragma=foreign_keys(1)"`
}

// AdminConfig optionally seeds an administrator account at startup. Both
// fields must be set for the seed to run.
type AdminConfig struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
	Username string `env:"USERNAME" envDefault:"admin"`
}

// Enabled reports whether an admin seed was requested.
func (a AdminConfig) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

// LoadFromEnv parses the full configuration from environment variables.
func LoadFromEnv() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
