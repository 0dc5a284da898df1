// Package route maps location hashes to pages for the browser client.
package route

import (
	"net/url"
	"strings"
)

// Page is a screen the client knows how to draw.
type Page int

const (
	Home Page = iota
	Login
	FindUser
	Join
	Elsewhere // a page owned by the rest of the app
)

// Decision is what the router should do with a hash.
type Decision struct {
	Page     Page
	Path     string // path part of the hash, "/" for an empty hash
	Target   string // login only: where to go after a successful login
	Redirect string // when set, replace location.hash with it and resolve again
}

const redirectParam = "redirect"

// Resolve decides what to show for hash ("#/login?redirect=/mypage").
// Pages outside the public set need a session token; without one the
// caller is sent to the login page with the attempted path as target.
func Resolve(hash string, loggedIn bool, defaultTarget string) Decision {
	raw := strings.TrimPrefix(hash, "#")
	if raw == "" {
		raw = "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return Decision{Page: Home, Path: "/"}
	}

	switch u.Path {
	case "/":
		return Decision{Page: Home, Path: "/"}
	case "/login":
		target := u.Query().Get(redirectParam)
		if !isLocalPath(target) {
			target = defaultTarget
		}
		return Decision{Page: Login, Path: u.Path, Target: target}
	case "/findUser":
		return Decision{Page: FindUser, Path: u.Path}
	case "/join":
		return Decision{Page: Join, Path: u.Path}
	}

	if !loggedIn {
		return Decision{Redirect: LoginHash(u.Path)}
	}
	return Decision{Page: Elsewhere, Path: u.Path}
}

// LoginHash is the hash of the login page remembering target.
func LoginHash(target string) string {
	if !isLocalPath(target) || target == "/" {
		return "#/login"
	}
	return "#/login?" + url.Values{redirectParam: {target}}.Encode()
}

// Hash turns an app path into a location hash.
func Hash(path string) string {
	return "#" + path
}

// isLocalPath keeps redirect targets inside the app.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}
