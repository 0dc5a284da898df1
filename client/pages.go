//go:build js && wasm

package main

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
)

// placeholderPage stands in for flows that live outside this front end
// (account recovery, registration).
type placeholderPage struct {
	vecty.Core
	Title string `vecty:"prop"`
}

func (p *placeholderPage) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Style("text-align", "center"), vecty.Style("margin-top", "20px")),
		elem.Heading1(vecty.Text(p.Title)),
		elem.Anchor(vecty.Markup(vecty.Property("href", "#/login")), vecty.Text("로그인으로 돌아가기")),
	)
}
