package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation error codes.
const (
	CodeEmptyCatalog  = "EMPTY_CATALOG"
	CodeEmptyLevel    = "EMPTY_LEVEL"
	CodeEmptyWord     = "EMPTY_WORD"
	CodeDuplicateWord = "DUPLICATE_WORD"
	CodeInvalid       = "INVALID"
)

// ValidationError describes why a catalog cannot be played.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that a catalog is playable:
//   - it has at least one level and every level has at least one pair
//   - no word is empty
//   - within a level, a word belongs to at most one pair
//
// The last rule keeps pairing unambiguous, a selected word can only ever
// complete the pair it came from.
func Validate(c Catalog) error {
	if err := validate.Struct(c); err != nil {
		return translate(err)
	}

	for li, level := range c.Levels {
		owner := make(map[string]int, level.CardCount())
		for pi, p := range level.Pairs {
			for _, w := range []string{p.Singular, p.Plural} {
				if strings.TrimSpace(w) == "" {
					return ValidationError{
						Code:    CodeEmptyWord,
						Message: fmt.Sprintf("level %d pair %d has a blank word", li+1, pi+1),
					}
				}
				if prev, seen := owner[w]; seen && prev != pi {
					return ValidationError{
						Code: CodeDuplicateWord,
						Message: fmt.Sprintf("level %d: %q appears in pair %d and pair %d",
							li+1, w, prev+1, pi+1),
					}
				}
				owner[w] = pi
			}
		}
	}

	return nil
}

// translate maps the first struct validation failure onto a ValidationError.
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ValidationError{Code: CodeInvalid, Message: err.Error()}
	}

	fe := verrs[0]
	switch {
	case fe.Field() == "Levels" && fe.Tag() == "min":
		return ValidationError{Code: CodeEmptyCatalog, Message: "catalog has no levels"}
	case fe.Field() == "Pairs" && fe.Tag() == "min":
		return ValidationError{Code: CodeEmptyLevel, Message: fe.Namespace() + " has no pairs"}
	case fe.Tag() == "required":
		return ValidationError{Code: CodeEmptyWord, Message: fe.Namespace() + " is empty"}
	default:
		return ValidationError{Code: CodeInvalid, Message: fe.Error()}
	}
}
