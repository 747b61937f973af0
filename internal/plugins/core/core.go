// Package core generates the theme-table utility families that sit next to
// the stack utilities: width, max-width, translate, fill, and text colour and
// decoration.
package core

import (
	"github.com/alexisbeaulieu97/tailstack/internal/plugin"
	"github.com/alexisbeaulieu97/tailstack/internal/theme"
	"github.com/alexisbeaulieu97/tailstack/internal/utility"
)

// TextDecoration is a fixed family with no backing theme scale.
const TextDecoration = "textDecoration"

// TextColor is the family fed by the colors scale.
const TextColor = "textColor"

type scalePlugin struct {
	meta      plugin.Metadata
	scale     string
	templates []utility.Template
}

func (p scalePlugin) PluginMetadata() plugin.Metadata { return p.meta }

func (p scalePlugin) Generate(api *plugin.API) error {
	scale, err := api.Theme(p.scale)
	if err != nil {
		return err
	}
	result := utility.Expand(scale, p.templates,
		utility.WithScope(""),
		utility.WithEscaper(api.Escape),
	)
	api.AddUtilities(p.meta.Family, result, api.Variants(p.meta.Family))
	return nil
}

func newScalePlugin(name, family, scale, description string, templates ...utility.Template) plugin.Plugin {
	return scalePlugin{
		meta: plugin.Metadata{
			Name:        name,
			Version:     "1.0.0",
			Family:      family,
			Description: description,
		},
		scale:     scale,
		templates: templates,
	}
}

// NewWidth returns the w-<modifier> plugin.
func NewWidth() plugin.Plugin {
	return newScalePlugin("width", theme.Width, theme.Width, "Element widths.",
		utility.Template{Name: utility.Prefixed("w"), Declare: utility.Set("width")},
	)
}

// NewMaxWidth returns the max-w-<modifier> plugin.
func NewMaxWidth() plugin.Plugin {
	return newScalePlugin("max-width", theme.MaxWidth, theme.MaxWidth, "Maximum element widths.",
		utility.Template{Name: utility.Prefixed("max-w"), Declare: utility.Set("maxWidth")},
	)
}

// NewTranslate returns the translate-{x,y}-<modifier> plugin. Negative
// modifiers move their sign in front of the class.
func NewTranslate() plugin.Plugin {
	return newScalePlugin("translate", theme.Translate, theme.Translate, "Transform translations.",
		utility.Template{Name: utility.Signed("translate-x"), Declare: utility.Set("--transform-translate-x")},
		utility.Template{Name: utility.Signed("translate-y"), Declare: utility.Set("--transform-translate-y")},
	)
}

// NewFill returns the fill-<modifier> plugin.
func NewFill() plugin.Plugin {
	return newScalePlugin("fill", theme.Fill, theme.Fill, "SVG fill colours.",
		utility.Template{Name: utility.Prefixed("fill"), Declare: utility.Set("fill")},
	)
}

// NewTextColor returns the text-<color> plugin.
func NewTextColor() plugin.Plugin {
	return newScalePlugin("text-color", TextColor, theme.Colors, "Text colours.",
		utility.Template{Name: utility.Prefixed("text"), Declare: utility.Set("color")},
	)
}

// decorations maps each class to its text-decoration value.
var decorations = theme.NewScale(
	theme.Pair{Key: "underline", Value: "underline"},
	theme.Pair{Key: "line-through", Value: "line-through"},
	theme.Pair{Key: "no-underline", Value: "none"},
)

type textDecorationPlugin struct{}

// NewTextDecoration returns the fixed underline/line-through/no-underline plugin.
func NewTextDecoration() plugin.Plugin { return textDecorationPlugin{} }

func (textDecorationPlugin) PluginMetadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "text-decoration",
		Version:     "1.0.0",
		Family:      TextDecoration,
		Description: "Underline and strike-through.",
	}
}

func (textDecorationPlugin) Generate(api *plugin.API) error {
	result := utility.Expand(decorations,
		[]utility.Template{{
			Name:    func(modifier string) string { return modifier },
			Declare: utility.Set("textDecoration"),
		}},
		utility.WithScope(""),
		utility.WithEscaper(api.Escape),
	)
	api.AddUtilities(TextDecoration, result, api.Variants(TextDecoration))
	return nil
}

// All returns the core plugins in stylesheet order.
func All() []plugin.Plugin {
	return []plugin.Plugin{
		NewWidth(),
		NewMaxWidth(),
		NewTranslate(),
		NewFill(),
		NewTextColor(),
		NewTextDecoration(),
	}
}
