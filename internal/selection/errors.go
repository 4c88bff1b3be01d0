package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marcus/pdp/internal/models"
)

var (
	// ErrNoSizeSelected is returned when the purchase action is confirmed
	// before any size was chosen
	ErrNoSizeSelected = errors.New("no size selected")

	// ErrUnknownSize is matched by errors.Is for sizes outside the catalog
	ErrUnknownSize = errors.New("unknown size")
)

// UnknownSizeError represents a selection of a size the catalog does not offer
type UnknownSizeError struct {
	Size    models.Size
	Catalog []models.Size
}

func (e *UnknownSizeError) Error() string {
	names := make([]string, len(e.Catalog))
	for i, s := range e.Catalog {
		names[i] = string(s)
	}
	return fmt.Sprintf("unknown size %q (available: %s)", e.Size, strings.Join(names, ", "))
}

// Is makes errors.Is(err, ErrUnknownSize) hold
func (e *UnknownSizeError) Is(target error) bool {
	return target == ErrUnknownSize
}
