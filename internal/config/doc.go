// Package config loads runtime configuration for the clubcard binaries.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv). A dotenv file is loaded first:
//     the one named by -env, or ./.env when present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string     spreadsheet id
//	-b string     S3 bucket
//	-r string     resources directory (pass assets and certificates)
//	-u string     public card base URL
//	-l string     log level (debug, info, warn, error)
//	-m int        max sheet mutations per pass
//	-i duration   pause between sheet mutations
//	-sms          send SMS notices
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "5s" or
// integer nanoseconds:
//
//	{
//	  "spreadsheet_id": "1AbC...",
//	  "s3_bucket": "cards.docil.co.il",
//	  "pacing_interval": "5s",
//	  "max_updates": 25
//	}
//
// Secrets (service account keys, the Apple private key and its password,
// AWS keys) are normally supplied through the environment under the names
// listed in env.go.
package config
