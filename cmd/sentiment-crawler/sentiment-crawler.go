package main

import (
	"os"

	"github.com/eurocent/sentimentCrawler/internal/crawler"
)

func main() {
	app := crawler.GetApp()
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
