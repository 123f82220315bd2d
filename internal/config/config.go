package config

import (
	"os"

	"github.com/joho/godotenv"

	"vacancystats/internal/service"
)

// DefaultLanguages is the language list statistics are built for when
// the caller does not override it.
var DefaultLanguages = []string{
	"python",
	"java",
	"javascript",
	"c#",
	"c++",
	"PHP",
	"TYPESCRIPT",
	"Rust",
	"Swift",
	"GO",
	"Kotlin",
}

const (
	// hh.ru query filters: Moscow, developer role, postings from the
	// last 30 days, the API's maximum page size.
	defaultHHArea    = 1
	defaultHHRole    = 96
	defaultHHPeriod  = 30
	defaultHHPerPage = 100

	// superjob.ru town id for Moscow.
	defaultSJTown = 4

	superJobKeyEnv = "SUPERJOB_API_KEY"
)

// Config carries everything the collectors need: the language list and
// the fixed per-service query filters, credential included.
type Config struct {
	Languages []string
	HH        service.HHConfig
	SuperJob  service.SJConfig
}

// Load builds the default configuration, reading the superjob
// credential from the environment (a .env file in the working directory
// is honored). A missing credential is not an error here; it surfaces
// as an authorization failure on the first superjob request.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Languages: DefaultLanguages,
		HH: service.HHConfig{
			Area:    defaultHHArea,
			Role:    defaultHHRole,
			Period:  defaultHHPeriod,
			PerPage: defaultHHPerPage,
		},
		SuperJob: service.SJConfig{
			Town:  defaultSJTown,
			Token: os.Getenv(superJobKeyEnv),
		},
	}
}
