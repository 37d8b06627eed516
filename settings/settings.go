package settings

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config contains the runtime configuration of the application
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first if present, real environment
// variables take precedence.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Port:         os.Getenv("PORT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	return cfg
}
