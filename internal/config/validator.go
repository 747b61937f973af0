package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tailstack/internal/stylesheet"
	"github.com/alexisbeaulieu97/tailstack/internal/theme"
	tailerrors "github.com/alexisbeaulieu97/tailstack/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			return stylesheet.IsKnownVariant(fl.Field().String())
		})

		_ = v.RegisterValidation("extractor_regexp", func(fl validator.FieldLevel) bool {
			_, err := regexp.Compile(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tailerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	scales := map[string]theme.Scale{
		theme.Spacing:     cfg.Theme.Spacing,
		theme.Padding:     cfg.Theme.Padding,
		theme.BorderWidth: cfg.Theme.BorderWidth,
		theme.Width:       cfg.Theme.Width,
		theme.Translate:   cfg.Theme.Translate,
		theme.MaxWidth:    cfg.Theme.MaxWidth,
		theme.Fill:        cfg.Theme.Fill,
		theme.Colors:      cfg.Theme.Colors,
		theme.Screens:     cfg.Theme.Screens,
	}
	for _, name := range sortedKeys(scales) {
		if err := validateScale("theme."+name, scales[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(cfg.Theme.Extend) {
		if err := validateScale("theme.extend."+name, cfg.Theme.Extend[name]); err != nil {
			return err
		}
	}

	return nil
}

// validateScale rejects empty values, which would render as declarations
// with no value.
func validateScale(field string, scale theme.Scale) error {
	for _, p := range scale.Pairs() {
		if strings.TrimSpace(p.Key) == "" {
			return tailerrors.NewValidationError(field, "modifier must not be empty", nil)
		}
		if strings.TrimSpace(p.Value) == "" {
			return tailerrors.NewValidationError(fmt.Sprintf("%s.%s", field, p.Key), "value must not be empty", nil)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "variant" {
			msg = fmt.Sprintf("unknown variant %q (known: %s)", ve.Value(), strings.Join(stylesheet.KnownVariants(), ", "))
		}
		return tailerrors.NewValidationError(field, msg, err)
	}

	return tailerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.Purge.Content[0]" into "purge.content[0]".
// Map keys inside brackets keep their case.
func yamlishFieldName(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.StructNamespace(), "Config.")
	parts := strings.Split(ns, ".")
	for i, part := range parts {
		name, rest, _ := strings.Cut(part, "[")
		if rest != "" {
			rest = "[" + rest
		}
		parts[i] = strings.ToLower(name) + rest
	}
	return strings.Join(parts, ".")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
