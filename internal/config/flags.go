package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/clubcard/internal/flagx"
)

// parseFlags populates selected Config fields from the short command-line
// flags listed in the package documentation. os.Args is first filtered with
// flagx.FilterArgsWithBools so the -c/-config and -env flags do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgsWithBools(os.Args[1:],
		[]string{"-s", "-b", "-r", "-u", "-l", "-m", "-i", "-sms"},
		[]string{"-sms"},
	)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.SpreadsheetID, "s", config.SpreadsheetID, "spreadsheet id")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.ResourcesDir, "r", config.ResourcesDir, "resources directory")
	fs.StringVar(&config.CardBaseURL, "u", config.CardBaseURL, "public card base URL")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.IntVar(&config.MaxUpdates, "m", config.MaxUpdates, "max sheet mutations per pass")
	fs.DurationVar(&config.PacingInterval, "i", config.PacingInterval, "pause between sheet mutations")
	fs.BoolVar(&config.SMSEnabled, "sms", config.SMSEnabled, "send SMS notices")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
