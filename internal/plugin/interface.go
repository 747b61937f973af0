// Package plugin defines the contract utility generators implement and the
// registry that orders and runs them.
package plugin

// Plugin generates utilities from theme scales.
//
// Generate reads scales through the API and hands finished utilities back
// with api.AddUtilities. It must not retain the API after returning.
type Plugin interface {
	PluginMetadata() Metadata
	Generate(api *API) error
}

// Func adapts a metadata value and a generate function into a Plugin.
type Func struct {
	Meta Metadata
	Fn   func(api *API) error
}

// PluginMetadata returns the wrapped metadata.
func (f Func) PluginMetadata() Metadata { return f.Meta }

// Generate calls the wrapped function.
func (f Func) Generate(api *API) error { return f.Fn(api) }
