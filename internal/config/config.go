package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/clubcard/internal/common"
)

// Config holds runtime settings for cardbot and walletclass.
type Config struct {
	SpreadsheetID     string
	SheetName         string
	GoogleCredentials string

	S3Bucket           string
	S3Region           string
	S3BaseEndpoint     string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	SESRegion    string
	SNSRegion    string
	EmailSender  string
	SMSSenderID  string
	SMSEnabled   bool
	ContactPhone string
	CardBaseURL  string

	ResourcesDir      string
	AppleCertPath     string
	AppleWWDRPath     string
	AppleP12Path      string
	AppleKey          string
	AppleKeyPassword  string
	AppleTeamID       string
	ApplePassTypeID   string
	AppleOrganization string

	GoogleWalletCredentials string
	GoogleWalletIssuerID    string
	GoogleWalletClassSuffix string

	PacingInterval    time.Duration
	MaxUpdates        int
	RenewalPeriodDays int
	RenewalTTLDays    int
	PhoneRegion       string
	TimeZone          string

	LogBackend string
	LogLevel   string
	LogFormat  string
}

// LoadDefaults sets the production values that are not secrets.
func (c *Config) LoadDefaults() {
	c.S3Region = "eu-west-1"
	c.SESRegion = "eu-west-1"
	c.SNSRegion = "eu-west-1"
	c.EmailSender = "Ducati Israel <noreply@docil.co.il>"
	c.SMSSenderID = "DOCIL"
	c.SMSEnabled = false
	c.CardBaseURL = "https://card.docil.co.il"

	c.ResourcesDir = "resources"
	c.AppleTeamID = "E85N35G3YB"
	c.ApplePassTypeID = "pass.com.madappgang.doc.israel"
	c.AppleOrganization = "DOC Israel"

	c.GoogleWalletClassSuffix = "docIsraelMembershipCardV2"

	c.PacingInterval = 5 * time.Second
	c.MaxUpdates = 25
	c.RenewalPeriodDays = 31
	c.RenewalTTLDays = 15
	c.PhoneRegion = "IL"
	c.TimeZone = "Asia/Jerusalem"

	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// CertPath returns the pass certificate path, defaulting to
// <resources>/certs/certificate.pem.
func (c *Config) CertPath() string {
	if c.AppleCertPath != "" {
		return c.AppleCertPath
	}
	return filepath.Join(c.ResourcesDir, "certs", "certificate.pem")
}

// WWDRPath returns the Apple WWDR intermediate path, defaulting to
// <resources>/certs/wwdr.pem.
func (c *Config) WWDRPath() string {
	if c.AppleWWDRPath != "" {
		return c.AppleWWDRPath
	}
	return filepath.Join(c.ResourcesDir, "certs", "wwdr.pem")
}

// GoogleWalletEnabled reports whether save links should be produced.
func (c *Config) GoogleWalletEnabled() bool {
	return c.GoogleWalletCredentials != "" && c.GoogleWalletIssuerID != ""
}

// Location resolves TimeZone, falling back to the local zone.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Validate reports every missing or malformed setting cardbot needs.
func (c *Config) Validate() error {
	var errs []error
	required := []struct {
		name  string
		value string
	}{
		{envSpreadsheetID, c.SpreadsheetID},
		{envGoogleCredentials, c.GoogleCredentials},
		{envS3Bucket, c.S3Bucket},
		{envContactPhone, c.ContactPhone},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%w: %s is not set", common.ErrInvalidConfig, r.name))
		}
	}

	if c.AppleKey == "" && c.AppleP12Path == "" {
		errs = append(errs, fmt.Errorf("%w: %s or apple_p12_path is not set", common.ErrInvalidConfig, envAppleKey))
	}
	if c.GoogleCredentials != "" {
		if _, err := DecodeCredentials(c.GoogleCredentials); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, envGoogleCredentials, err))
		}
	}
	if (c.GoogleWalletCredentials == "") != (c.GoogleWalletIssuerID == "") {
		errs = append(errs, fmt.Errorf("%w: %s and %s must be set together", common.ErrInvalidConfig, envWalletCredentials, envWalletIssuerID))
	}
	if c.MaxUpdates <= 0 {
		errs = append(errs, fmt.Errorf("%w: max_updates must be positive", common.ErrInvalidConfig))
	}
	if c.PacingInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: pacing_interval must not be negative", common.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// DecodeCredentials returns service account JSON given either verbatim or
// hex encoded.
func DecodeCredentials(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		return []byte(s), nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex credentials: %w", err)
	}
	return b, nil
}
