package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("tailstack.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "tailstack.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: tailstack.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("tailstack.toml", 0, stdErrors.New("bad"))
	require.Equal(t, "parse error: tailstack.toml: bad", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("variants.padding[1]", "unknown variant \"active\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "variants.padding[1]", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown variant")
	require.Contains(t, err.Error(), "variants.padding[1]")
}

func TestOutputErrorIncludesPath(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewOutputError("dist/utilities.css", underlying)

	var outputErr *OutputError
	require.ErrorAs(t, err, &outputErr)
	require.Equal(t, "dist/utilities.css", outputErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestPluginErrorIncludesPluginName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("missing theme table")
	err := NewPluginError("stack-spacing", underlying)

	var pluginErr *PluginError
	require.ErrorAs(t, err, &pluginErr)
	require.Equal(t, "stack-spacing", pluginErr.Plugin)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[stack-spacing]")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var outputErr *OutputError
	var pluginErr *PluginError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, outputErr.Error())
	require.Empty(t, pluginErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Nil(t, pluginErr.Unwrap())
}
