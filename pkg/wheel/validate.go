// pkg/wheel/validate.go

package wheel

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

const (
	MinOptions = 2
	MaxOptions = 10
)

// CollectConfig carries the collection parameters through struct validation.
type CollectConfig struct {
	Count int `validate:"min=2,max=10"`
}

var validate = validator.New()

// ValidCount returns nil iff n is an acceptable option count.
func ValidCount(n int) error {
	if err := validate.Struct(CollectConfig{Count: n}); err != nil {
		return cerr.Newf("invalid parameter range: specify between %d-%d options", MinOptions, MaxOptions)
	}
	return nil
}

// NonEmpty returns nil iff s has content. Whitespace counts as content: the
// option text is accepted verbatim, only a fully empty line is rejected.
func NonEmpty(s string) error {
	if s == "" {
		return cerr.New("empty input detected")
	}
	return nil
}

// ValidOptions checks a fully collected option list against the engine's
// precondition.
func ValidOptions(options OptionList) error {
	if err := ValidCount(len(options)); err != nil {
		return err
	}
	for i, opt := range options {
		if err := NonEmpty(opt); err != nil {
			return cerr.Wrapf(err, "option %d", i+1)
		}
	}
	return nil
}
