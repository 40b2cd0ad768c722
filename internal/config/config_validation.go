// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies the
// `validate` tags of its fields.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidServiceConfigs] or [ErrInvalidLogConfigs] otherwise.
func (cfg *StructuredConfig) validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating configs: %w", err)
	}

	var joined error
	for _, fe := range fieldErrs {
		switch fe.StructNamespace() {
		case "StructuredConfig.Log.Level":
			joined = errors.Join(joined, fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, fe.Value()))
		default:
			joined = errors.Join(joined, fmt.Errorf("%w: %s failed %q", ErrInvalidServiceConfigs, fe.Field(), fe.Tag()))
		}
	}

	return joined
}
