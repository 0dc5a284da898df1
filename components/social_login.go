//go:build js && wasm

package components

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
)

// Provider is one social login button.
type Provider struct {
	Name  string
	Label string
	URL   string
}

// SocialLogin renders the SNS login buttons. It follows plain links; the
// login form knows nothing about what happens behind them.
type SocialLogin struct {
	vecty.Core
	Providers []Provider `vecty:"prop"`
}

func (s *SocialLogin) Render() vecty.ComponentOrHTML {
	var buttons vecty.List
	for _, p := range s.Providers {
		buttons = append(buttons, elem.Anchor(
			vecty.Markup(
				vecty.Class("sns-button", "sns-"+p.Name),
				vecty.Property("href", p.URL),
				vecty.Attribute("title", p.Label),
			),
			vecty.Text(p.Label),
		))
	}
	return elem.Div(
		vecty.Markup(vecty.Class("sns-buttons")),
		buttons,
	)
}
