//go:build js && wasm

package main

import (
	"syscall/js"

	"specfarm-front/client/home"
	"specfarm-front/components"
	"specfarm-front/internal/authclient"
	"specfarm-front/internal/config"
	"specfarm-front/internal/loginform"
	"specfarm-front/internal/route"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/rohanthewiz/logger"
)

// App is the main application component, acting as a router.
type App struct {
	vecty.Core
	cfg     *config.Config
	auth    *authclient.Client
	cookies *cookieStore
	session *sessionStore

	current route.Decision
	login   *components.Login
}

// NewApp creates the router and resolves the initial route.
func NewApp(cfg *config.Config) *App {
	a := &App{
		cfg:     cfg,
		auth:    authclient.New(cfg.LoginURL(), cfg.RequestTimeout),
		cookies: newCookieStore(),
		session: newSessionStore(),
	}
	a.resolve(location().Get("hash").String())
	return a
}

// Mount starts listening for hash changes.
func (a *App) Mount() {
	js.Global().Set("onhashchange", js.FuncOf(a.handleRouteChange))
}

func (a *App) handleRouteChange(this js.Value, args []js.Value) interface{} {
	a.resolve(location().Get("hash").String())
	vecty.Rerender(a)
	return nil
}

func (a *App) resolve(hash string) {
	d := route.Resolve(hash, a.loggedIn(), a.cfg.DefaultRedirect)
	if d.Redirect != "" {
		logger.Debug("Route needs login", "hash", hash)
		location().Set("hash", d.Redirect)
		d = route.Resolve(d.Redirect, a.loggedIn(), a.cfg.DefaultRedirect)
	}

	if d.Page == route.Login {
		if a.login == nil || a.current.Page != route.Login {
			a.login = a.newLogin(d.Target)
		} else {
			a.login.Form.SetTarget(d.Target)
		}
	} else {
		a.login = nil
	}
	a.current = d
}

func (a *App) newLogin(target string) *components.Login {
	providers := make([]components.Provider, 0, len(a.cfg.Federated))
	for _, f := range a.cfg.Federated {
		providers = append(providers, components.Provider{Name: f.Name, Label: f.Label, URL: a.cfg.FederatedURL(f)})
	}

	return components.NewLogin(loginform.Options{
		Auth:        a.auth,
		Credentials: a.cookies,
		Session:     a.session,
		Navigator:   loginform.NavigatorFunc(a.navigate),
		Target:      target,
		RememberKey: a.cfg.Storage.RememberKey,
		TokenKey:    a.cfg.Storage.TokenKey,
	}, &components.SocialLogin{Providers: providers})
}

func (a *App) navigate(path string) {
	location().Set("hash", route.Hash(path))
}

func (a *App) loggedIn() bool {
	_, ok := a.session.Get(a.cfg.Storage.TokenKey)
	return ok
}

// Render renders the component based on the current route.
func (a *App) Render() vecty.ComponentOrHTML {
	switch a.current.Page {
	case route.Login:
		return elem.Body(a.login)
	case route.FindUser:
		return elem.Body(&placeholderPage{Title: "계정정보 찾기"})
	case route.Join:
		return elem.Body(&placeholderPage{Title: "회원가입"})
	default:
		return elem.Body(&home.HomePage{LoggedIn: a.loggedIn()})
	}
}

func location() js.Value {
	return js.Global().Get("location")
}
