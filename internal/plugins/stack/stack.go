// Package stack generates the sibling-spacing utilities described by the
// "stack" layout primitive: spacing and borders between children, never
// before the first or after the last.
package stack

import (
	"github.com/alexisbeaulieu97/tailstack/internal/plugin"
	"github.com/alexisbeaulieu97/tailstack/internal/theme"
	"github.com/alexisbeaulieu97/tailstack/internal/utility"
)

// SpacingTemplates name stack-{my,mx,py,px}-<modifier>. Every modifier is
// suffixed, including "default".
var SpacingTemplates = []utility.Template{
	{Name: utility.Prefixed("stack-my"), Declare: utility.Set("marginTop")},
	{Name: utility.Prefixed("stack-mx"), Declare: utility.Set("marginLeft")},
	{Name: utility.Prefixed("stack-py"), Declare: utility.Set("paddingTop")},
	{Name: utility.Prefixed("stack-px"), Declare: utility.Set("paddingLeft")},
}

// BorderTemplates name stack-border-{y,x}[-<modifier>], dropping the suffix
// for the default key.
var BorderTemplates = []utility.Template{
	{Name: utility.Name("stack-border-y"), Declare: utility.Set("borderTopWidth")},
	{Name: utility.Name("stack-border-x"), Declare: utility.Set("borderLeftWidth")},
}

type spacingPlugin struct{}

// NewSpacing returns the plugin expanding the padding scale into stack spacing utilities.
func NewSpacing() plugin.Plugin { return spacingPlugin{} }

func (spacingPlugin) PluginMetadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "stack-spacing",
		Version:     "1.0.0",
		Family:      theme.Padding,
		Description: "Margin and padding between stacked siblings.",
	}
}

func (spacingPlugin) Generate(api *plugin.API) error {
	return generate(api, theme.Padding, SpacingTemplates)
}

type borderPlugin struct{}

// NewBorder returns the plugin expanding the border width scale into stack border utilities.
func NewBorder() plugin.Plugin { return borderPlugin{} }

func (borderPlugin) PluginMetadata() plugin.Metadata {
	return plugin.Metadata{
		Name:         "stack-border",
		Version:      "1.0.0",
		Family:       theme.BorderWidth,
		Dependencies: []string{"stack-spacing"},
		Description:  "Borders between stacked siblings.",
	}
}

func (borderPlugin) Generate(api *plugin.API) error {
	return generate(api, theme.BorderWidth, BorderTemplates)
}

func generate(api *plugin.API, family string, templates []utility.Template) error {
	scale, err := api.Theme(family)
	if err != nil {
		return err
	}
	result := utility.Expand(scale, templates, utility.WithEscaper(api.Escape))
	api.AddUtilities(family, result, api.Variants(family))
	return nil
}
