package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"

	"github.com/modu-ai/namelint/internal/convention"
)

// structValidator reports field names by their yaml keys so messages match
// what users write in .namelint.yaml.
var structValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

// Validate checks the configuration for correctness and returns every
// problem as *ValidationErrors.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateStruct(cfg)...)
	errs = append(errs, validateDisabledRules(&cfg.Rules)...)
	errs = append(errs, validateIgnorePatterns(&cfg.Scan)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateStruct runs the struct tag checks.
func validateStruct(cfg *Config) []ValidationError {
	err := structValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "(config)", Message: err.Error(), Wrapped: ErrInvalidConfig}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: tagMessage(fe),
			Value:   fe.Value(),
			Wrapped: ErrInvalidConfig,
		})
	}
	return out
}

// fieldPath turns "Config.rules.max_exports_per_file" into
// "rules.max_exports_per_file".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "required":
		return "must not be empty"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// validateDisabledRules checks that every disabled rule id exists.
func validateDisabledRules(r *RulesConfig) []ValidationError {
	var errs []ValidationError
	for i, id := range r.Disabled {
		if convention.IsKnownRule(id) {
			continue
		}
		errs = append(errs, ValidationError{
			Field:   fmt.Sprintf("rules.disabled[%d]", i),
			Message: "unknown rule id; run `namelint rules` for the list",
			Value:   string(id),
			Wrapped: ErrUnknownRule,
		})
	}
	return errs
}

// validateIgnorePatterns checks that every ignore pattern compiles.
func validateIgnorePatterns(s *ScanConfig) []ValidationError {
	var errs []ValidationError
	for i, pattern := range s.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("scan.ignore[%d]", i),
				Message: err.Error(),
				Value:   pattern,
				Wrapped: ErrInvalidPattern,
			})
		}
	}
	return errs
}
