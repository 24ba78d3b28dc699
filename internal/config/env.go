package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/dmitrijs2005/clubcard/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names, as used by the deployed bot.
const (
	envSpreadsheetID      = "GOOGLE_SPREADSHEET_ID"
	envSheetName          = "GOOGLE_SHEET_NAME"
	envGoogleCredentials  = "GOOGLE_SERVICE_ACCOUNT_CREDENTIALS"
	envS3Bucket           = "AWS_S3_BUCKET_NAME"
	envS3Region           = "AWS_S3_REGION"
	envS3Endpoint         = "AWS_S3_ENDPOINT"
	envAWSAccessKeyID     = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	envSNSRegion          = "AWS_SNS_REGION"
	envSESRegion          = "AWS_SES_REGION"
	envSMSEnabled         = "SMS_ENABLED"
	envContactPhone       = "CONTACT_PHONE_NUMBER"
	envCardBaseURL        = "CARD_BASE_URL"
	envResourcesDir       = "RESOURCES_DIR"
	envAppleKey           = "APPLE_CARD_PRIVATE_KEY"
	envAppleKeyPassword   = "APPLE_CARD_PRIVATE_KEY_PASSWORD"
	envAppleP12Path       = "APPLE_CARD_P12_PATH"
	envWalletCredentials  = "GOOGLE_WALLET_SERVICE_ACCOUNT_CREDENTIALS"
	envWalletIssuerID     = "GOOGLE_WALLET_ISSUER_ID"
	envMaxUpdates         = "MAX_DOCUMENT_UPDATES"
	envLogLevel           = "LOG_LEVEL"
)

// loadEnvFile loads the dotenv file named by -env. Without the flag a
// missing ./.env is not an error. Variables already set in the process
// environment are never overridden.
func loadEnvFile() {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

func parseEnv(config *Config) {
	loadEnvFile()

	config.SpreadsheetID = getEnv(envSpreadsheetID, config.SpreadsheetID)
	config.SheetName = getEnv(envSheetName, config.SheetName)
	config.GoogleCredentials = getEnv(envGoogleCredentials, config.GoogleCredentials)
	config.S3Bucket = getEnv(envS3Bucket, config.S3Bucket)
	config.S3Region = getEnv(envS3Region, config.S3Region)
	config.S3BaseEndpoint = getEnv(envS3Endpoint, config.S3BaseEndpoint)
	config.AWSAccessKeyID = getEnv(envAWSAccessKeyID, config.AWSAccessKeyID)
	config.AWSSecretAccessKey = getEnv(envAWSSecretAccessKey, config.AWSSecretAccessKey)
	config.SNSRegion = getEnv(envSNSRegion, config.SNSRegion)
	config.SESRegion = getEnv(envSESRegion, config.SESRegion)
	config.SMSEnabled = getEnvAsBool(envSMSEnabled, config.SMSEnabled)
	config.ContactPhone = getEnv(envContactPhone, config.ContactPhone)
	config.CardBaseURL = getEnv(envCardBaseURL, config.CardBaseURL)
	config.ResourcesDir = getEnv(envResourcesDir, config.ResourcesDir)
	config.AppleKey = getEnv(envAppleKey, config.AppleKey)
	config.AppleKeyPassword = getEnv(envAppleKeyPassword, config.AppleKeyPassword)
	config.AppleP12Path = getEnv(envAppleP12Path, config.AppleP12Path)
	config.GoogleWalletCredentials = getEnv(envWalletCredentials, config.GoogleWalletCredentials)
	config.GoogleWalletIssuerID = getEnv(envWalletIssuerID, config.GoogleWalletIssuerID)
	config.MaxUpdates = getEnvAsInt(envMaxUpdates, config.MaxUpdates)
	config.LogLevel = getEnv(envLogLevel, config.LogLevel)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
