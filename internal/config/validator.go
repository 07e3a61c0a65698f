package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aleister1102/listingparser/internal/common/errorwrapper"
	"github.com/aleister1102/listingparser/internal/listing"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("fileexists", func(fl validator.FieldLevel) bool {
		filePath := fl.Field().String()
		if filePath == "" {
			return true
		}
		info, err := os.Stat(filePath)
		return err == nil && !info.IsDir()
	})

	_ = validate.RegisterValidation("listingformat", func(fl validator.FieldLevel) bool {
		_, err := listing.ParseFormat(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("scheme", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case string(listing.SchemeHTTP), string(listing.SchemeHTTPS):
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("outputformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errorwrapper.WrapError(err, "configuration validation error")
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", trimNamespace(e.StructNamespace()), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			msg += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		messages = append(messages, msg)
	}
	return fmt.Errorf("%w: configuration validation failed:\n  %s", errorwrapper.ErrInvalidConfiguration, strings.Join(messages, "\n  "))
}

// trimNamespace drops the root struct name, "GlobalConfig.ParserConfig.Port"
// becomes "ParserConfig.Port".
func trimNamespace(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
