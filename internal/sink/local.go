// Package sink stores the serialized output of a run
package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FileName is the name of the output file, relative to the output directory
const FileName = "sentiment.txt"

// Sink persists the output of a run
type Sink interface {
	// Write stores body, replacing any previous content, and returns the
	// path of the written file
	Write(body []byte) (string, error)
}

type localSink struct {
	dir string
}

// NewLocalSink create a new Sink writing FileName under dir.
// An empty dir means the current working directory.
func NewLocalSink(dir string) Sink {
	return &localSink{dir: dir}
}

// Path returns the path of the output file for given output directory
func Path(dir string) string {
	if dir == "" {
		return FileName
	}
	return filepath.Join(dir, FileName)
}

func (s *localSink) Write(body []byte) (string, error) {
	path := Path(s.dir)

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0750); err != nil {
			return "", fmt.Errorf("error while creating output directory %s: %w", s.dir, err)
		}
	}

	if err := os.WriteFile(path, body, 0640); err != nil {
		return "", fmt.Errorf("error while writing %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("size", len(body)).Msg("Successfully wrote file")

	return path, nil
}
