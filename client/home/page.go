//go:build js && wasm

package home

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
)

// HomePage is where a login lands by default.
type HomePage struct {
	vecty.Core
	LoggedIn bool `vecty:"prop"`
}

func (h *HomePage) Render() vecty.ComponentOrHTML {
	if !h.LoggedIn {
		return elem.Div(
			elem.Heading1(vecty.Text("specFarm")),
			elem.Anchor(vecty.Markup(vecty.Property("href", "#/login")), vecty.Text("로그인")),
		)
	}
	return elem.Div(
		elem.Heading1(vecty.Text("specFarm")),
		elem.Paragraph(vecty.Text("로그인되었습니다.")),
	)
}
