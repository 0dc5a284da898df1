//go:build js && wasm

package components

import (
	"context"

	"specfarm-front/internal/loginform"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"
)

// Login renders the login page around a loginform.Form.
type Login struct {
	vecty.Core
	Form   *loginform.Form `vecty:"prop"`
	Social *SocialLogin    `vecty:"prop"`
}

// NewLogin builds the page and hooks re-rendering into the form.
func NewLogin(opts loginform.Options, social *SocialLogin) *Login {
	l := &Login{Social: social}
	opts.OnChange = func() {
		vecty.Rerender(l)
	}
	l.Form = loginform.New(opts)
	return l
}

// Mount reads the remembered id once the page is in the DOM.
func (l *Login) Mount() {
	l.Form.Mount(context.Background())
}

// Unmount drops any request still in flight.
func (l *Login) Unmount() {
	l.Form.Unmount()
}

func (l *Login) onSubmit(e *vecty.Event) {
	// the password is read from the field itself, it is never kept in state
	secret := e.Target.Get("elements").Get("userPw").Get("value").String()
	l.Form.SubmitAsync(secret)
}

func (l *Login) Render() vecty.ComponentOrHTML {
	s := l.Form.Snapshot()

	return elem.Div(
		vecty.Markup(
			vecty.Class("login-center"),
			vecty.Style("background", "rgb(250, 250, 250)"),
		),
		elem.Div(
			vecty.Markup(vecty.Class("login-form")),
			elem.Div(
				vecty.Markup(vecty.Class("login-logo")),
				elem.Anchor(vecty.Markup(vecty.Property("href", "#/")), vecty.Text("specFarm")),
			),
			elem.Paragraph(vecty.Markup(vecty.Class("login-title")), vecty.Text("로그인")),
			elem.Form(
				vecty.Markup(
					event.Submit(l.onSubmit).PreventDefault(),
				),
				l.renderIdentifier(s),
				l.renderSecret(s),
				l.renderRemember(s),
				l.renderBanner(s),
				elem.Button(
					vecty.Markup(
						vecty.Class("login-submit"),
						vecty.Property("type", "submit"),
						vecty.Property("disabled", s.Submitting),
					),
					vecty.Text("로그인"),
				),
				elem.Div(
					vecty.Markup(vecty.Class("login-links"), vecty.Style("text-align", "center"), vecty.Style("margin-top", "24px")),
					elem.Anchor(vecty.Markup(vecty.Property("href", "#/findUser")), vecty.Text("계정정보 찾기")),
					elem.Anchor(
						vecty.Markup(vecty.Property("href", "#/join"), vecty.Style("margin-left", "50px")),
						vecty.Text("회원가입"),
					),
				),
				elem.Div(
					vecty.Markup(vecty.Class("sns-login")),
					elem.Paragraph(vecty.Text("SNS계정으로 간편 로그인/회원가입")),
					elem.Div(vecty.Markup(vecty.Class("sns-login-icons")), l.Social),
				),
			),
		),
	)
}

func (l *Login) renderIdentifier(s loginform.State) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("field"), vecty.MarkupIf(s.IdentifierInvalid, vecty.Class("field-error"))),
		elem.Label(vecty.Markup(vecty.Attribute("for", "userId")), vecty.Text("아이디")),
		elem.Input(vecty.Markup(
			vecty.Property("type", "text"),
			vecty.Property("id", "userId"),
			vecty.Property("name", "userId"),
			vecty.Property("value", s.Identifier),
			vecty.Attribute("aria-invalid", s.IdentifierInvalid),
			event.Input(func(e *vecty.Event) {
				l.Form.SetIdentifier(e.Target.Get("value").String())
			}),
			event.Blur(func(e *vecty.Event) {
				l.Form.BlurIdentifier()
			}),
			event.Focus(func(e *vecty.Event) {
				l.Form.FocusIdentifier()
			}),
		)),
	)
}

func (l *Login) renderSecret(s loginform.State) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("field"), vecty.MarkupIf(s.SecretInvalid, vecty.Class("field-error"))),
		elem.Label(vecty.Markup(vecty.Attribute("for", "userPw")), vecty.Text("비밀번호")),
		elem.Input(vecty.Markup(
			vecty.Property("type", "password"),
			vecty.Property("id", "userPw"),
			vecty.Property("name", "userPw"),
			vecty.Attribute("aria-invalid", s.SecretInvalid),
			event.Blur(func(e *vecty.Event) {
				l.Form.BlurSecret(e.Target.Get("value").String())
			}),
			event.Focus(func(e *vecty.Event) {
				l.Form.FocusSecret()
			}),
		)),
	)
}

func (l *Login) renderRemember(s loginform.State) vecty.ComponentOrHTML {
	return elem.Div(
		elem.Label(
			vecty.Markup(vecty.Class("remember"), vecty.Style("font-size", "14px")),
			elem.Input(vecty.Markup(
				vecty.Property("type", "checkbox"),
				vecty.Property("checked", s.Remember),
				event.Change(func(e *vecty.Event) {
					l.Form.SetRemember(e.Target.Get("checked").Bool())
				}),
			)),
			vecty.Text("아이디 저장"),
		),
	)
}

// renderBanner keeps the banner in the DOM and only toggles hidden.
func (l *Login) renderBanner(s loginform.State) vecty.ComponentOrHTML {
	return elem.Paragraph(
		vecty.Markup(
			vecty.Property("id", "loginFailAlert"),
			vecty.Property("hidden", !s.ErrorVisible),
			vecty.Style("color", "#e53e3e"),
			vecty.Style("background", "rgba(229, 62, 62, 0.1)"),
			vecty.Style("padding", "10px"),
			vecty.Style("line-height", "150%"),
			vecty.Style("margin-top", "24px"),
			vecty.Style("text-align", "center"),
		),
		vecty.Text(loginform.BannerLines[0]),
		elem.Break(),
		vecty.Text(loginform.BannerLines[1]),
	)
}
