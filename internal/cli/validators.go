package cli

import (
	"fmt"
	"time"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateInterval validates an autoplay interval flag
func ValidateInterval(d time.Duration) error {
	if d < 100*time.Millisecond {
		return fmt.Errorf("interval too short: %s (minimum 100ms)", d)
	}
	return nil
}

// ValidateSequence validates a calculator key sequence argument
func ValidateSequence(sequence string) error {
	if sequence == "" {
		return fmt.Errorf("key sequence cannot be empty")
	}
	return nil
}
