//go:build js && wasm

package main

import (
	"syscall/js"

	"specfarm-front/internal/storage"

	"github.com/rohanthewiz/serr"
)

// cookieStore is the remember store, backed by document.cookie.
type cookieStore struct {
	doc js.Value
}

func newCookieStore() *cookieStore {
	return &cookieStore{doc: js.Global().Get("document")}
}

func (c *cookieStore) Get(key string) (string, bool) {
	return storage.LookupCookie(c.doc.Get("cookie").String(), key)
}

func (c *cookieStore) Set(key, value string) error {
	c.doc.Set("cookie", storage.FormatCookie(key, value))
	return nil
}

func (c *cookieStore) Remove(key string) error {
	c.doc.Set("cookie", storage.ExpireCookie(key))
	return nil
}

// sessionStore wraps window.sessionStorage, which lives as long as the tab.
type sessionStore struct {
	ss js.Value
}

func newSessionStore() *sessionStore {
	return &sessionStore{ss: js.Global().Get("sessionStorage")}
}

// Set turns the QuotaExceededError a browser may throw into an error.
func (s *sessionStore) Set(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = serr.New("sessionStorage.setItem failed")
		}
	}()
	s.ss.Call("setItem", key, value)
	return nil
}

func (s *sessionStore) Get(key string) (string, bool) {
	v := s.ss.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}
