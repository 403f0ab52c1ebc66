// Package crawler is the sentiment-crawler command: it parses the command line,
// fetches one document and writes the triples extracted from it to a file.
package crawler

import (
	"fmt"
	"strings"

	"github.com/eurocent/sentimentCrawler/internal/extractor"
	chttp "github.com/eurocent/sentimentCrawler/internal/http"
	"github.com/eurocent/sentimentCrawler/internal/sink"
	"github.com/eurocent/sentimentCrawler/internal/source"
	"github.com/eurocent/sentimentCrawler/internal/util/logging"
	"github.com/eurocent/sentimentCrawler/internal/writer"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const (
	urlFlag          = "url"
	outputDirFlag    = "outputDir"
	outputFormatFlag = "outputFormat"
	userAgentFlag    = "user-agent"
	timeoutFlag      = "timeout"

	// DefaultUserAgent identifies the crawler to the remote servers
	DefaultUserAgent = "Eurosentiment Crawler"
)

// GetApp return the sentiment-crawler app
func GetApp() *cli.App {
	var formats []string
	for _, f := range writer.Formats() {
		formats = append(formats, f.String())
	}

	return &cli.App{
		Name:    "sentiment-crawler",
		Version: "0.1.0",
		Usage:   "Extract the structured data embedded in a web page into a triple file",
		Flags: []cli.Flag{
			logging.GetLogFlag(),
			&cli.StringFlag{
				Name:  urlFlag,
				Usage: "URL of the document to extract (http, https or file)",
			},
			&cli.StringFlag{
				Name:  outputDirFlag,
				Usage: fmt.Sprintf("Directory receiving %s, default to the working directory", sink.FileName),
			},
			&cli.StringFlag{
				Name:  outputFormatFlag,
				Usage: fmt.Sprintf("Output format (%s)", strings.Join(formats, ", ")),
				Value: writer.DefaultFormat.String(),
			},
			&cli.StringFlag{
				Name:  userAgentFlag,
				Usage: "User agent to use",
				Value: DefaultUserAgent,
			},
			&cli.StringFlag{
				Name:  timeoutFlag,
				Usage: "Timeout of the document fetch (e.g. 30s, 2m), no timeout if empty",
			},
		},
		Action: execute,
	}
}

func execute(c *cli.Context) error {
	logging.ConfigureLogger(c)

	cfg, err := NewConfig(c)
	if err != nil {
		log.Err(err).Msg("Invalid configuration")
		return err
	}

	log.Info().
		Str("ver", c.App.Version).
		Str("url", cfg.URI).
		Msg(fmt.Sprintf("Started %s", c.App.Name))

	httpClient := chttp.NewDefaultClient(cfg.UserAgent, cfg.Timeout)
	loader := extractor.NewContextLoader(cfg.UserAgent, cfg.Timeout)

	runner := NewRunner(
		source.NewSource(httpClient),
		extractor.NewEngine(extractor.DefaultExtractors(loader)...),
		sink.NewLocalSink(cfg.OutputDir),
	)

	res, err := runner.Run(cfg)
	if err != nil {
		return err
	}

	printReport(c.App.Writer, res)

	return nil
}
