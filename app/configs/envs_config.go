package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	Port          string
	JWTSecret     string
	TokenDuration time.Duration
	CorsOrigins   string
	APP_ENV       string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	tokenDuration := time.Hour
	if raw := os.Getenv("TOKEN_DURATION"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Invalid TOKEN_DURATION %q, falling back to 1h", raw)
		} else {
			tokenDuration = parsed
		}
	}

	return ENV{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		Port:          os.Getenv("APP_PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenDuration: tokenDuration,
		CorsOrigins:   os.Getenv("CORS_ORIGINS"),
		APP_ENV:       os.Getenv("APP_ENV"),
	}

}

var LoadENV = LoadEnv()
