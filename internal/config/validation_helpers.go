package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return lferrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Store.Backend == "redis" && cfg.Store.Redis.Addr == "" {
		return lferrors.NewValidationError("store.redis.addr", "addr is required for the redis backend", nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into linkforce validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return lferrors.NewValidationError(field, msg, err)
	}

	return lferrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace, leaving the
// dotted yaml path.
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
