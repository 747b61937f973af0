package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailstack/internal/plugin"
	"github.com/alexisbeaulieu97/tailstack/internal/theme"
	"github.com/alexisbeaulieu97/tailstack/internal/utility"
)

func generate(t *testing.T, th *theme.Theme) map[string]*utility.Result {
	t.Helper()

	r := plugin.NewRegistry(&plugin.RegistryConfig{DependencyPolicy: plugin.PolicyStrict}, nil)
	r.MustRegister(All()...)

	groups, err := plugin.Run(context.Background(), r, plugin.NewAPI(th, nil), nil)
	require.NoError(t, err)

	out := make(map[string]*utility.Result, len(groups))
	for _, g := range groups {
		out[g.Plugin] = g.Utilities
	}
	return out
}

func decl(t *testing.T, r *utility.Result, selector string) string {
	t.Helper()
	e, ok := r.Get(selector)
	require.True(t, ok, "missing %s in %v", selector, r.Selectors())
	return e.Declaration.String()
}

func TestWidthUtilities(t *testing.T) {
	t.Parallel()

	got := generate(t, theme.Default())["width"]
	require.Equal(t, "width: auto;", decl(t, got, ".w-auto"))
	require.Equal(t, "width: 50%;", decl(t, got, ".w-1of2"))
	require.Equal(t, "width: 91.666667%;", decl(t, got, ".w-11of12"))
	require.Equal(t, "width: 100vw;", decl(t, got, ".w-screen"))
	require.Equal(t, "width: 1px;", decl(t, got, ".w-px"))
}

func TestTranslateUtilitiesIncludeNegatives(t *testing.T) {
	t.Parallel()

	got := generate(t, theme.Default())["translate"]
	require.Equal(t, "--transform-translate-x: 1rem;", decl(t, got, ".translate-x-4"))
	require.Equal(t, "--transform-translate-x: -1rem;", decl(t, got, ".-translate-x-4"))
	require.Equal(t, "--transform-translate-y: -100%;", decl(t, got, ".-translate-y-full"))
	require.Equal(t, "--transform-translate-y: -50%;", decl(t, got, ".-translate-y-1of2"))

	_, ok := got.Get(".-translate-x-0")
	require.False(t, ok, "zero has no negative")
}

func TestExtendedMaxWidthAndFill(t *testing.T) {
	t.Parallel()

	th := theme.Resolve(theme.Options{Extend: map[string]theme.Scale{
		theme.MaxWidth: theme.NewScale(theme.Pair{Key: "screen", Value: "100vw"}),
		theme.Fill:     theme.NewScale(theme.Pair{Key: "none", Value: "none"}),
	}})

	got := generate(t, th)
	require.Equal(t, "max-width: 100vw;", decl(t, got["max-width"], ".max-w-screen"))
	require.Equal(t, `max-width: 42rem;`, decl(t, got["max-width"], `.max-w-2xl`))
	require.Equal(t, "fill: none;", decl(t, got["fill"], ".fill-none"))
	require.Equal(t, "fill: currentColor;", decl(t, got["fill"], ".fill-current"))
}

func TestTextUtilities(t *testing.T) {
	t.Parallel()

	got := generate(t, theme.Default())
	require.Equal(t, "color: #1a202c;", decl(t, got["text-color"], ".text-gray-900"))
	require.Equal(t, []string{".underline", ".line-through", ".no-underline"}, got["text-decoration"].Selectors())
	require.Equal(t, "text-decoration: none;", decl(t, got["text-decoration"], ".no-underline"))
}

func TestCoreSelectorsAreUnscoped(t *testing.T) {
	t.Parallel()

	for _, result := range generate(t, theme.Default()) {
		for _, sel := range result.Selectors() {
			require.NotContains(t, sel, utility.SiblingScope)
		}
	}
}
