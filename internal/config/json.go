package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/clubcard/internal/flagx"
	"github.com/dmitrijs2005/clubcard/internal/timex"
)

// JsonConfig is the on-disk form of Config. Only non-zero values override
// what is already set, so a file may list just the settings it changes.
type JsonConfig struct {
	SpreadsheetID           string         `json:"spreadsheet_id"`
	SheetName               string         `json:"sheet_name"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
	SESRegion               string         `json:"ses_region"`
	SNSRegion               string         `json:"sns_region"`
	EmailSender             string         `json:"email_sender"`
	SMSSenderID             string         `json:"sms_sender_id"`
	SMSEnabled              *bool          `json:"sms_enabled"`
	ContactPhone            string         `json:"contact_phone"`
	CardBaseURL             string         `json:"card_base_url"`
	ResourcesDir            string         `json:"resources_dir"`
	AppleCertPath           string         `json:"apple_cert_path"`
	AppleWWDRPath           string         `json:"apple_wwdr_path"`
	AppleP12Path            string         `json:"apple_p12_path"`
	AppleTeamID             string         `json:"apple_team_id"`
	ApplePassTypeID         string         `json:"apple_pass_type_id"`
	AppleOrganization       string         `json:"apple_organization"`
	GoogleWalletIssuerID    string         `json:"google_wallet_issuer_id"`
	GoogleWalletClassSuffix string         `json:"google_wallet_class_suffix"`
	PacingInterval          timex.Duration `json:"pacing_interval"`
	MaxUpdates              int            `json:"max_updates"`
	RenewalPeriodDays       int            `json:"renewal_period_days"`
	RenewalTTLDays          int            `json:"renewal_ttl_days"`
	PhoneRegion             string         `json:"phone_region"`
	TimeZone                string         `json:"time_zone"`
	LogBackend              string         `json:"log_backend"`
	LogLevel                string         `json:"log_level"`
	LogFormat               string         `json:"log_format"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// parseJson overlays the file named by -c/-config onto config. Nothing
// happens when neither flag is given. An unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.SpreadsheetID, c.SpreadsheetID)
	setString(&config.SheetName, c.SheetName)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.SESRegion, c.SESRegion)
	setString(&config.SNSRegion, c.SNSRegion)
	setString(&config.EmailSender, c.EmailSender)
	setString(&config.SMSSenderID, c.SMSSenderID)
	if c.SMSEnabled != nil {
		config.SMSEnabled = *c.SMSEnabled
	}
	setString(&config.ContactPhone, c.ContactPhone)
	setString(&config.CardBaseURL, c.CardBaseURL)
	setString(&config.ResourcesDir, c.ResourcesDir)
	setString(&config.AppleCertPath, c.AppleCertPath)
	setString(&config.AppleWWDRPath, c.AppleWWDRPath)
	setString(&config.AppleP12Path, c.AppleP12Path)
	setString(&config.AppleTeamID, c.AppleTeamID)
	setString(&config.ApplePassTypeID, c.ApplePassTypeID)
	setString(&config.AppleOrganization, c.AppleOrganization)
	setString(&config.GoogleWalletIssuerID, c.GoogleWalletIssuerID)
	setString(&config.GoogleWalletClassSuffix, c.GoogleWalletClassSuffix)
	if c.PacingInterval.Duration != 0 {
		config.PacingInterval = c.PacingInterval.Duration
	}
	setInt(&config.MaxUpdates, c.MaxUpdates)
	setInt(&config.RenewalPeriodDays, c.RenewalPeriodDays)
	setInt(&config.RenewalTTLDays, c.RenewalTTLDays)
	setString(&config.PhoneRegion, c.PhoneRegion)
	setString(&config.TimeZone, c.TimeZone)
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
}
