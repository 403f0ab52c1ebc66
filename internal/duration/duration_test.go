package duration

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 0},
		{"50s", time.Second * 50},
		{"50m", time.Minute * 50},
		{"1h30m", time.Hour + time.Minute*30},
		{"2d", time.Hour * 24 * 2},
	}

	for _, test := range tests {
		got, err := Parse(test.value)
		if err != nil {
			t.Errorf("Parse(%s): unexpected error %s", test.value, err)
		}
		if got != test.want {
			t.Errorf("Parse(%s): got %s, want %s", test.value, got, test.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, value := range []string{"ten seconds", "5x", "-5s"} {
		if _, err := Parse(value); err == nil {
			t.Errorf("Parse(%s): expected an error", value)
		}
	}
}
