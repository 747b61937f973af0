package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tailstack/internal/theme"
	tailerrors "github.com/alexisbeaulieu97/tailstack/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns
// the resulting model. Files ending in .toml are decoded as TOML, everything
// else as YAML.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tailerrors.NewParseError(path, 0, err)
	}

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = decodeTOML(path, data)
	} else {
		cfg, err = decodeYAML(path, data)
	}
	if err != nil {
		return nil, err
	}
	cfg.Path = path

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(path string, data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, tailerrors.NewParseError(path, extractLine(err), err)
	}
	return &cfg, nil
}

type tomlDocument struct {
	Version  string              `toml:"version"`
	Theme    map[string]any      `toml:"theme"`
	Variants map[string][]string `toml:"variants"`
	Purge    Purge               `toml:"purge"`
	Output   string              `toml:"output"`
}

func decodeTOML(path string, data []byte) (*Config, error) {
	var doc tomlDocument
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		line := 0
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, _ = decodeErr.Position()
		}
		return nil, tailerrors.NewParseError(path, line, err)
	}

	opts, err := themeFromTOML(doc.Theme)
	if err != nil {
		return nil, tailerrors.NewParseError(path, 0, err)
	}

	return &Config{
		Version:  doc.Version,
		Theme:    opts,
		Variants: doc.Variants,
		Purge:    doc.Purge,
		Output:   doc.Output,
	}, nil
}

// themeFromTOML converts decoded TOML tables into theme options. TOML tables
// are unordered, so scales are sorted naturally by key.
func themeFromTOML(raw map[string]any) (theme.Options, error) {
	var opts theme.Options
	for name, value := range raw {
		if name == "extend" {
			tables, ok := value.(map[string]any)
			if !ok {
				return opts, fmt.Errorf("theme.extend must be a table")
			}
			opts.Extend = make(map[string]theme.Scale, len(tables))
			for extName, extValue := range tables {
				scale, err := scaleFromTOML("theme.extend."+extName, extValue)
				if err != nil {
					return opts, err
				}
				opts.Extend[extName] = scale
			}
			continue
		}

		scale, err := scaleFromTOML("theme."+name, value)
		if err != nil {
			return opts, err
		}
		field := optionField(&opts, name)
		if field == nil {
			return opts, fmt.Errorf("theme.%s is not a known scale", name)
		}
		*field = scale
	}
	return opts, nil
}

func scaleFromTOML(field string, value any) (theme.Scale, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return theme.Scale{}, fmt.Errorf("%s must be a table of modifier to value", field)
	}
	for key, v := range table {
		if _, nested := v.(map[string]any); nested {
			return theme.Scale{}, fmt.Errorf("%s.%s must be a scalar value", field, key)
		}
	}

	var values map[string]string
	if err := mapstructure.WeakDecode(table, &values); err != nil {
		return theme.Scale{}, fmt.Errorf("%s: %w", field, err)
	}
	return theme.FromMap(values), nil
}

func optionField(opts *theme.Options, name string) *theme.Scale {
	switch name {
	case theme.Spacing:
		return &opts.Spacing
	case theme.Padding:
		return &opts.Padding
	case theme.BorderWidth:
		return &opts.BorderWidth
	case theme.Width:
		return &opts.Width
	case theme.Translate:
		return &opts.Translate
	case theme.MaxWidth:
		return &opts.MaxWidth
	case theme.Fill:
		return &opts.Fill
	case theme.Colors:
		return &opts.Colors
	case theme.Screens:
		return &opts.Screens
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
