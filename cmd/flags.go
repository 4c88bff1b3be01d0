package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/marcus/pdp/internal/catalog"
	"github.com/marcus/pdp/internal/models"
)

var (
	_ pflag.Value = (*langValue)(nil)
	_ pflag.Value = (*sizeValue)(nil)
)

// langValue is a --lang flag restricted to supported languages
type langValue string

func (v *langValue) String() string { return string(*v) }

func (v *langValue) Set(s string) error {
	if !catalog.IsSupported(s) {
		return fmt.Errorf("unsupported language %q (supported: %v)", s, catalog.Languages())
	}
	*v = langValue(s)
	return nil
}

func (v *langValue) Type() string { return "lang" }

// sizeValue is a --size flag; values are normalized, catalog membership is
// checked when the size is selected
type sizeValue models.Size

func (v *sizeValue) String() string { return string(*v) }

func (v *sizeValue) Set(s string) error {
	size := models.NormalizeSize(s)
	if size == "" {
		return fmt.Errorf("size must not be empty")
	}
	*v = sizeValue(size)
	return nil
}

func (v *sizeValue) Type() string { return "size" }
