package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/clubcard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://card.docil.co.il", c.CardBaseURL)
	assert.Equal(t, "Ducati Israel <noreply@docil.co.il>", c.EmailSender)
	assert.Equal(t, "DOCIL", c.SMSSenderID)
	assert.False(t, c.SMSEnabled)
	assert.Equal(t, 5*time.Second, c.PacingInterval)
	assert.Equal(t, 25, c.MaxUpdates)
	assert.Equal(t, 31, c.RenewalPeriodDays)
	assert.Equal(t, 15, c.RenewalTTLDays)
	assert.Equal(t, "IL", c.PhoneRegion)
	assert.Equal(t, "E85N35G3YB", c.AppleTeamID)
	assert.Equal(t, "pass.com.madappgang.doc.israel", c.ApplePassTypeID)
	assert.Equal(t, "docIsraelMembershipCardV2", c.GoogleWalletClassSuffix)
	assert.Equal(t, filepath.Join("resources", "certs", "certificate.pem"), c.CertPath())
	assert.Equal(t, filepath.Join("resources", "certs", "wwdr.pem"), c.WWDRPath())
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"spreadsheet_id": "from-json",
		"s3_bucket": "json-bucket",
		"max_updates": 10,
		"pacing_interval": "2s",
		"sms_enabled": true
	}`), 0o600))

	t.Setenv(envS3Bucket, "env-bucket")
	t.Setenv(envContactPhone, "972500000000")
	setArgs(t, "-c", jsonPath, "-m", "3")

	c := LoadConfig()

	assert.Equal(t, "from-json", c.SpreadsheetID)
	assert.Equal(t, "env-bucket", c.S3Bucket)
	assert.Equal(t, "972500000000", c.ContactPhone)
	assert.Equal(t, 3, c.MaxUpdates)
	assert.Equal(t, 2*time.Second, c.PacingInterval)
	assert.True(t, c.SMSEnabled)
	assert.Equal(t, 31, c.RenewalPeriodDays)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "bot.env")
	require.NoError(t, os.WriteFile(envPath, []byte("GOOGLE_WALLET_ISSUER_ID=3388000000012345\nAPPLE_CARD_PRIVATE_KEY=\"-----BEGIN\\nKEY\"\n"), 0o600))
	setArgs(t, "-env", envPath)
	t.Cleanup(func() {
		os.Unsetenv(envWalletIssuerID)
		os.Unsetenv(envAppleKey)
	})

	c := LoadConfig()

	assert.Equal(t, "3388000000012345", c.GoogleWalletIssuerID)
	assert.Contains(t, c.AppleKey, "-----BEGIN")
}

func TestLoadConfig_BadJSONPanics(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{`), 0o600))
	setArgs(t, "-config", jsonPath)

	require.Panics(t, func() { LoadConfig() })
}

func validConfig() *Config {
	c := &Config{}
	c.LoadDefaults()
	c.SpreadsheetID = "sheet"
	c.GoogleCredentials = hex.EncodeToString([]byte(`{"type":"service_account"}`))
	c.S3Bucket = "bucket"
	c.ContactPhone = "972500000000"
	c.AppleKey = "key"
	return c
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	c := validConfig()
	c.SpreadsheetID = ""
	c.S3Bucket = ""
	c.GoogleCredentials = "zz"
	c.GoogleWalletIssuerID = "123"
	c.MaxUpdates = 0

	err := c.Validate()
	require.ErrorIs(t, err, common.ErrInvalidConfig)
	for _, want := range []string{envSpreadsheetID, envS3Bucket, envGoogleCredentials, envWalletCredentials, "max_updates"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestDecodeCredentials(t *testing.T) {
	raw := `{"client_email":"bot@example.com"}`

	got, err := DecodeCredentials(hex.EncodeToString([]byte(raw)))
	require.NoError(t, err)
	assert.Equal(t, raw, string(got))

	got, err = DecodeCredentials("  " + raw + "\n")
	require.NoError(t, err)
	assert.Equal(t, raw, string(got))

	_, err = DecodeCredentials("not hex")
	require.Error(t, err)
}

func TestGoogleWalletEnabled(t *testing.T) {
	c := validConfig()
	assert.False(t, c.GoogleWalletEnabled())
	c.GoogleWalletCredentials = "{}"
	c.GoogleWalletIssuerID = "1"
	assert.True(t, c.GoogleWalletEnabled())
}

func TestLocation(t *testing.T) {
	c := &Config{TimeZone: "UTC"}
	assert.Equal(t, time.UTC, c.Location())
	c.TimeZone = "Nowhere/Special"
	assert.Equal(t, time.Local, c.Location())
}
