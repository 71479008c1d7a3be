package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DBUrl      string
	SQLitePath string
	JWTSecret  string
	ServerPort string

	AdminUsername     string
	adminPasswordHash []byte
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg := &Config{
		DBUrl:         os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "odf_booking.db"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		AdminUsername: getEnv("ADMIN_USERNAME", "odf_admin"),
	}

	// Only the hash is kept past Load.
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(getEnv("ADMIN_PASSWORD", "odf_secure_password_123")),
		bcrypt.DefaultCost,
	)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	cfg.adminPasswordHash = hash

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) CheckAdminPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(c.adminPasswordHash, []byte(password)) == nil
}
