package env

import (
	"fmt"
	"os"
	"time"

	cenv "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var Env map[string]string

// Config is the typed application configuration
type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"prod"`
	AppHost string `env:"APP_HOST" envDefault:"localhost"`
	AppPort string `env:"APP_PORT" envDefault:"4000"`

	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBName     string `env:"DB_NAME"`

	CacheHost     string `env:"CACHE_HOST" envDefault:"localhost"`
	CachePort     string `env:"CACHE_PORT" envDefault:"6379"`
	CachePassword string `env:"CACHE_PASSWORD"`

	CheckInCacheTTL     time.Duration `env:"CHECKIN_CACHE_TTL" envDefault:"10m"`
	QuestExpiryInterval time.Duration `env:"QUEST_EXPIRY_INTERVAL" envDefault:"1h"`

	// DevUserID acts as the signed-in user when APP_ENV=dev and the session is empty
	DevUserID uint `env:"DEV_USER_ID" envDefault:"0"`

	MetricsUser     string `env:"METRICS_USER" envDefault:"admin"`
	MetricsPassword string `env:"METRICS_PASSWORD"`
}

// IsDev reports whether the config runs in development mode
func (c Config) IsDev() bool {
	return c.AppEnv == "dev"
}

// Addr is the listen address of the HTTP server
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func GetEnv(key, def string) string {
	// First check our loaded Env map
	if val, ok := Env[key]; ok {
		return val
	}
	// Fallback to OS environment variables (for Docker/tests)
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func SetupEnvFile() {
	// Look for .env file in project root
	envFiles := []string{
		".env",          // Current directory
		"../../.env",    // From cmd/questboard to project root
		"../../../.env", // Fallback for deeper nesting
	}

	var err error
	for _, envFile := range envFiles {
		Env, err = godotenv.Read(envFile)
		if err == nil {
			return
		}
	}

	// Containers pass everything through the OS environment
	Env = map[string]string{}
}

// LoadConfig parses Config from the .env map layered over the OS environment,
// with the same precedence as GetEnv
func LoadConfig() (Config, error) {
	merged := cenv.ToMap(os.Environ())
	for k, v := range Env {
		merged[k] = v
	}

	var cfg Config
	if err := cenv.ParseWithOptions(&cfg, cenv.Options{Environment: merged}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
