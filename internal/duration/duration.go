package duration

import (
	"fmt"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// Parse parse given duration into time.Duration. Days and weeks units (d, w) are
// accepted on top of the time.ParseDuration ones.
// An empty value means no duration and returns 0.
func Parse(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	val, err := str2duration.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %s: %w", value, err)
	}
	if val < 0 {
		return 0, fmt.Errorf("invalid duration %s: must not be negative", value)
	}

	return val, nil
}
