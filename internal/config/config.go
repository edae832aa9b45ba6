package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CarlinQuentin/property-manager/internal/constants"
	"github.com/CarlinQuentin/property-manager/internal/utils"
)

type Config struct {
	AppName string
	AppPort string
	AppURL  string

	DBUrl        string
	RSAPublicKey *rsa.PublicKey

	// Empty key disables the rent-reminder job.
	SendgridAPIKey    string
	SendgridFromEmail string

	AllowedOrigin string
	SeedDemoData  bool
}

// LoadConfig reads everything from the environment and fails fast on any
// missing required value. Optional values get sensible defaults.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", constants.AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	pubB64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if pubB64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	pubPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("RSA_PUBLIC_KEY_BASE64 is not valid base64")
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:" + appPort
	}
	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:5173"
	}

	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	sendgridFromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if sendgridAPIKey != "" && sendgridFromEmail == "" {
		utils.Logger.Fatal("SENDGRID_FROM_EMAIL env var is required when SENDGRID_API_KEY is set")
	}
	if sendgridAPIKey == "" {
		utils.Logger.Info("SENDGRID_API_KEY not set; rent reminders disabled")
	}

	return &Config{
		AppName:           constants.AppName,
		AppPort:           appPort,
		AppURL:            appURL,
		DBUrl:             dbURL,
		RSAPublicKey:      pubKey,
		SendgridAPIKey:    sendgridAPIKey,
		SendgridFromEmail: sendgridFromEmail,
		AllowedOrigin:     allowedOrigin,
		SeedDemoData:      os.Getenv("SEED_DEMO_DATA") == "true",
	}
}
