package preview

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNoControls is returned for an empty control list.
	ErrNoControls = errors.New("preview: no controls declared")

	// ErrInvalidSchema is wrapped by every other schema violation.
	ErrInvalidSchema = errors.New("preview: invalid control schema")
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	controlNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("control_name", func(fl validator.FieldLevel) bool {
			return controlNamePattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// SchemaError describes a single schema violation.
type SchemaError struct {
	// Field is a path such as "controls[1].options[0].value".
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidSchema, e.Field, e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrInvalidSchema }

// Validate checks a control list: it must be non-empty, every control needs
// a label and a name matching [A-Za-z][A-Za-z0-9_-]*, names are unique, and
// every control has at least one option with unique, non-empty values.
func Validate(controls []Control) error {
	if len(controls) == 0 {
		return ErrNoControls
	}

	v := validatorInstance()
	seen := make(map[string]int, len(controls))
	for i, c := range controls {
		if err := v.Struct(c); err != nil {
			return convertValidationError(i, err)
		}
		if j, dup := seen[c.Name]; dup {
			return &SchemaError{
				Field:  fmt.Sprintf("controls[%d].name", i),
				Reason: fmt.Sprintf("duplicate name %q (also controls[%d])", c.Name, j),
			}
		}
		seen[c.Name] = i

		values := make(map[string]struct{}, len(c.Options))
		for k, o := range c.Options {
			if _, dup := values[o.Value]; dup {
				return &SchemaError{
					Field:  fmt.Sprintf("controls[%d].options[%d].value", i, k),
					Reason: fmt.Sprintf("duplicate value %q", o.Value),
				}
			}
			values[o.Value] = struct{}{}
		}
	}
	return nil
}

// convertValidationError turns the first validator failure into a SchemaError.
func convertValidationError(index int, err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &SchemaError{Field: fmt.Sprintf("controls[%d]", index), Reason: err.Error()}
	}
	fe := ves[0]
	return &SchemaError{
		Field:  fmt.Sprintf("controls[%d]%s", index, fieldPath(fe)),
		Reason: reasonFor(fe),
	}
}

// fieldPath maps "Control.Options[0].Value" to ".options[0].value".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(".")
		b.WriteString(strings.ToLower(p))
	}
	return b.String()
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return "needs at least one option"
	case "control_name":
		return fmt.Sprintf("%q must start with a letter and contain only letters, digits, '-' or '_'", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag %q", fe.Tag())
	}
}
