package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds the application configuration, populated from the environment.
type App struct {
	HTTPAddr     string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"./subtrack.db"`
	Env          string `envconfig:"APP_ENV" default:"development"`

	// The single application user, seeded on first start.
	SeedUserEmail    string `envconfig:"SEED_USER_EMAIL" default:"letsshopbd24@gmail.com"`
	SeedUserPassword string `envconfig:"SEED_USER_PASSWORD" default:"letsshopbd24@#@##"`

	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`
}

// IsProduction reports whether the app runs with production hardening
// (secure cookies) enabled.
func (a App) IsProduction() bool {
	return a.Env == "production"
}

// Load populates an App from environment variables.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
