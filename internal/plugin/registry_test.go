package plugin

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailstack/internal/logger"
	"github.com/alexisbeaulieu97/tailstack/internal/theme"
	"github.com/alexisbeaulieu97/tailstack/internal/utility"
	tailerrors "github.com/alexisbeaulieu97/tailstack/pkg/errors"
)

func newTestPlugin(name string, deps ...string) Func {
	return Func{
		Meta: Metadata{Name: name, Version: "1.0.0", Family: name, Dependencies: deps},
		Fn: func(api *API) error {
			scale := theme.NewScale(theme.Pair{Key: "1", Value: "1px"})
			api.AddUtilities(name, utility.Expand(scale, []utility.Template{
				{Name: utility.Prefixed(name), Declare: utility.Set("width")},
			}), api.Variants(name))
			return nil
		},
	}
}

func strictRegistry() *Registry {
	return NewRegistry(&RegistryConfig{DependencyPolicy: PolicyStrict}, nil)
}

func names(plugins []Plugin) []string {
	out := make([]string, len(plugins))
	for i, p := range plugins {
		out[i] = p.PluginMetadata().Name
	}
	return out
}

func TestMetadataValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		meta    Metadata
		wantErr string
	}{
		{name: "valid", meta: Metadata{Name: "a", Version: "1.2.3", Family: "padding"}},
		{name: "missing name", meta: Metadata{Version: "1.0.0", Family: "f"}, wantErr: "non-empty Name"},
		{name: "missing version", meta: Metadata{Name: "a", Family: "f"}, wantErr: "requires Version"},
		{name: "bad version", meta: Metadata{Name: "a", Version: "1.0", Family: "f"}, wantErr: "invalid Version"},
		{name: "missing family", meta: Metadata{Name: "a", Version: "1.0.0"}, wantErr: "requires Family"},
		{name: "self dependency", meta: Metadata{Name: "a", Version: "1.0.0", Family: "f", Dependencies: []string{"a"}}, wantErr: "itself"},
		{name: "duplicate dependency", meta: Metadata{Name: "a", Version: "1.0.0", Family: "f", Dependencies: []string{"b", "b"}}, wantErr: "more than once"},
		{name: "empty dependency", meta: Metadata{Name: "a", Version: "1.0.0", Family: "f", Dependencies: []string{" "}}, wantErr: "empty name"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.meta.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRegistryRegisterGetAndList(t *testing.T) {
	t.Parallel()

	r := strictRegistry()
	require.NoError(t, r.Register(newTestPlugin("width")))
	require.NoError(t, r.Register(newTestPlugin("fill")))

	got, err := r.Get("width")
	require.NoError(t, err)
	require.Equal(t, "width", got.PluginMetadata().Name)

	require.Equal(t, []string{"width", "fill"}, r.List())

	_, err = r.Get("missing")
	var notFound ErrPluginNotFound
	require.ErrorAs(t, err, &notFound)

	err = r.Register(newTestPlugin("width"))
	var dup ErrDuplicatePlugin
	require.ErrorAs(t, err, &dup)

	require.Error(t, r.Register(nil))

	meta, ok := r.Metadata("fill")
	require.True(t, ok)
	require.Equal(t, "fill", meta.Family)
}

func TestRegistryOrderedRespectsDependencies(t *testing.T) {
	t.Parallel()

	r := strictRegistry()
	r.MustRegister(
		newTestPlugin("stack-border", "stack-spacing"),
		newTestPlugin("stack-spacing", "width"),
		newTestPlugin("width"),
		newTestPlugin("fill"),
	)

	require.NoError(t, r.ValidateDependencies())
	ordered, err := r.Ordered()
	require.NoError(t, err)
	require.Equal(t, []string{"width", "stack-spacing", "stack-border", "fill"}, names(ordered))
}

func TestRegistryStrictMissingDependency(t *testing.T) {
	t.Parallel()

	r := strictRegistry()
	r.MustRegister(newTestPlugin("stack-border", "ghost"))

	err := r.ValidateDependencies()
	var missing ErrMissingDependency
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "ghost", missing.Dependency)
}

func TestRegistryGracefulDisablesDependents(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)

	r := NewRegistry(&RegistryConfig{DependencyPolicy: PolicyGraceful}, log)
	r.MustRegister(
		newTestPlugin("a", "ghost"),
		newTestPlugin("b", "a"),
		newTestPlugin("c"),
	)

	require.NoError(t, r.ValidateDependencies())
	require.Contains(t, buf.String(), "ghost")

	ordered, err := r.Ordered()
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, names(ordered))
}

func TestRegistryCycle(t *testing.T) {
	t.Parallel()

	r := strictRegistry()
	r.MustRegister(newTestPlugin("a", "b"), newTestPlugin("b", "a"))

	err := r.ValidateDependencies()
	var cycle ErrCircularDependency
	require.ErrorAs(t, err, &cycle)
	require.ElementsMatch(t, []string{"a", "b"}, cycle.Cycle)
	require.Contains(t, err.Error(), "->")

	_, err = r.Ordered()
	require.Error(t, err)
}

func TestRegistryDisable(t *testing.T) {
	t.Parallel()

	r := strictRegistry()
	r.MustRegister(newTestPlugin("a"), newTestPlugin("b"))
	r.Disable("a")

	require.Equal(t, []string{"b"}, r.List())
	_, err := r.Get("a")
	require.Error(t, err)
}

func TestDefaultConfigFollowsCI(t *testing.T) {
	t.Setenv("CI", "true")
	require.Equal(t, PolicyStrict, DefaultConfig().DependencyPolicy)

	t.Setenv("CI", "false")
	t.Setenv("CONTINUOUS_INTEGRATION", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")
	t.Setenv("JENKINS_HOME", "")
	require.Equal(t, PolicyGraceful, DefaultConfig().DependencyPolicy)
}

func TestRunCollectsGroupsInOrder(t *testing.T) {
	t.Parallel()

	r := strictRegistry()
	r.MustRegister(newTestPlugin("b", "a"), newTestPlugin("a"))

	variants := func(family string) []string {
		if family == "a" {
			return []string{"hover"}
		}
		return nil
	}

	groups, err := Run(context.Background(), r, NewAPI(theme.Default(), variants), nil)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "a", groups[0].Plugin)
	require.Equal(t, []string{"hover"}, groups[0].Variants)
	require.Equal(t, "b", groups[1].Plugin)
	require.Empty(t, groups[1].Variants)
	require.Equal(t, []string{".a-1 > * + *"}, groups[0].Utilities.Selectors())
}

func TestRunWrapsPluginErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := strictRegistry()
	r.MustRegister(Func{
		Meta: Metadata{Name: "broken", Version: "1.0.0", Family: "x"},
		Fn:   func(*API) error { return boom },
	})

	_, err := Run(context.Background(), r, NewAPI(theme.Default(), nil), nil)
	var pluginErr *tailerrors.PluginError
	require.ErrorAs(t, err, &pluginErr)
	require.Equal(t, "broken", pluginErr.Plugin)
	require.ErrorIs(t, err, boom)
}

func TestRunHonoursCancellation(t *testing.T) {
	t.Parallel()

	r := strictRegistry()
	r.MustRegister(newTestPlugin("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, r, NewAPI(theme.Default(), nil), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAPIThemeLookup(t *testing.T) {
	t.Parallel()

	api := NewAPI(theme.Default(), nil)
	scale, err := api.Theme(theme.BorderWidth)
	require.NoError(t, err)
	require.Equal(t, theme.DefaultBorderWidth.Len(), scale.Len())

	_, err = api.Theme("nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nope")

	require.Equal(t, `w-1\/2`, api.Escape("w-1/2"))
	require.Equal(t, 1, api.Negative(theme.NewScale(theme.Pair{Key: "4", Value: "1rem"})).Len())
	require.Nil(t, api.Variants("padding"))
}
