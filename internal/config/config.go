package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env   string
	Port  int
	DBURL string

	JWTSecret           string
	JWTAccessTTLMinutes int

	CORSOrigins []string

	OTLPEndpoint string

	// Optional demo accounts seeded at startup (local/dev only).
	SeedDemo          bool
	DemoCoordEmail    string
	DemoCoordPassword string
	DemoTeacherEmail  string
	DemoTeacherPass   string
}

func Load() Config {
	// .env is optional, real deployments use plain env vars
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "dev")
	port := getEnvInt("PORT", 8080)
	dbURL := getEnv("DATABASE_URL", "")

	if dbURL == "" {
		dbURL = buildDBURL()
	}

	return Config{
		Env:                 env,
		Port:                port,
		DBURL:               dbURL,
		JWTSecret:           getEnv("JWT_SECRET_KEY", "clave_secreta_por_defecto"),
		JWTAccessTTLMinutes: getEnvInt("JWT_ACCESS_TTL_MINUTES", 60),
		CORSOrigins:         []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
		OTLPEndpoint:        getEnv("OTLP_ENDPOINT", ""),
		SeedDemo:            getEnv("SEED_DEMO", "") == "true",
		DemoCoordEmail:      getEnv("DEMO_COORD_EMAIL", "coordinador@demo.edu"),
		DemoCoordPassword:   getEnv("DEMO_COORD_PASSWORD", ""),
		DemoTeacherEmail:    getEnv("DEMO_MAESTRO_EMAIL", "maestro@demo.edu"),
		DemoTeacherPass:     getEnv("DEMO_MAESTRO_PASSWORD", ""),
	}
}

func (c Config) AccessTTL() time.Duration {
	return time.Duration(c.JWTAccessTTLMinutes) * time.Minute
}

func buildDBURL() string {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "cronogramas")
	pass := getEnv("DB_PASSWORD", "cronogramas")
	name := getEnv("DB_NAME", "cronogramas")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			fmt.Println(err)
			return fallback
		}

		return num
	}
	return fallback
}
