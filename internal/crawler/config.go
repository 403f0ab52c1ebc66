package crawler

import (
	"time"

	"github.com/eurocent/sentimentCrawler/internal/duration"
	"github.com/eurocent/sentimentCrawler/internal/writer"
	"github.com/urfave/cli/v2"
)

// Config is the configuration of a single run. It is built once from the
// command line and never modified afterwards.
type Config struct {
	// URI of the document to extract
	URI string
	// OutputDir receives the output file, empty means the working directory
	OutputDir string
	// Format is the output format, Turtle when the requested one is unknown
	Format    writer.Format
	UserAgent string
	// Timeout bounds the document fetch, zero means no timeout
	Timeout time.Duration
}

// NewConfig builds the run configuration from the parsed flags
func NewConfig(c *cli.Context) (Config, error) {
	timeout, err := duration.Parse(c.String(timeoutFlag))
	if err != nil {
		return Config{}, err
	}

	return Config{
		URI:       c.String(urlFlag),
		OutputDir: c.String(outputDirFlag),
		Format:    writer.Resolve(c.String(outputFormatFlag)),
		UserAgent: c.String(userAgentFlag),
		Timeout:   timeout,
	}, nil
}
