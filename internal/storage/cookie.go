package storage

import (
	"net/http"
	"net/url"
)

// LookupCookie finds name in a document.cookie style string ("a=1; b=2")
// and returns its decoded value.
func LookupCookie(raw, name string) (string, bool) {
	req := &http.Request{Header: http.Header{"Cookie": {raw}}}
	c, err := req.Cookie(name)
	if err != nil {
		return "", false
	}
	v, err := url.PathUnescape(c.Value)
	if err != nil {
		return c.Value, true
	}
	return v, true
}

// FormatCookie builds the assignment for document.cookie that stores value
// under name for the whole site. No expiry is set.
func FormatCookie(name, value string) string {
	c := &http.Cookie{Name: name, Value: url.PathEscape(value), Path: "/"}
	return c.String()
}

// ExpireCookie builds the assignment for document.cookie that deletes name.
func ExpireCookie(name string) string {
	c := &http.Cookie{Name: name, Path: "/", MaxAge: -1}
	return c.String()
}
