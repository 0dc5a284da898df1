// Package devserver serves the wasm bundle during development and forwards
// API calls so the browser talks to a single origin.
package devserver

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"time"

	"specfarm-front/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// NewRouter builds the dev server handler: /user/* and /oauth2/* go to the
// API, everything else comes from the static dir.
func NewRouter(cfg *config.Config) (http.Handler, error) {
	apiURL, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, serr.Wrap(err, "invalid api_base_url")
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(apiURL)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.LogErr(serr.Wrap(err, "api proxy failed"), "path", r.URL.Path)
			http.Error(w, "bad gateway", http.StatusBadGateway)
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Handle("/user/*", proxy)
	r.Handle("/oauth2/*", proxy)
	r.Handle("/*", noCache(http.FileServer(http.Dir(cfg.DevServer.StaticDir))))

	return r, nil
}

// requestLogger logs each request with its chi request id.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", strconv.Itoa(ww.Status()),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// noCache makes rebuilt wasm bundles show up on reload.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		next.ServeHTTP(w, r)
	})
}
