package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/marcus/pdp/internal/config"
	"github.com/marcus/pdp/internal/models"
)

// suggest returns the names that fuzzy-match input, best first
func suggest(input string, names []string) string {
	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return ""
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return strings.Join(out, ", ")
}

// suggestSizes returns catalog sizes that fuzzy-match input
func suggestSizes(input models.Size, sizes []models.Size) string {
	names := make([]string, len(sizes))
	for i, s := range sizes {
		names[i] = string(s)
	}
	return suggest(string(input), names)
}

// withKeyHint adds a "did you mean" to unknown config key errors
func withKeyHint(key string, err error) error {
	if !errors.Is(err, config.ErrUnknownKey) {
		return err
	}
	if hint := suggest(key, config.Keys()); hint != "" {
		return fmt.Errorf("%w; did you mean %s?", err, hint)
	}
	return err
}
