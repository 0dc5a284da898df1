package devserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"specfarm-front/internal/config"

	"github.com/stretchr/testify/require"
)

func newDevServer(t *testing.T, apiURL string) (*httptest.Server, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>specFarm</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.wasm"), []byte("\x00asm"), 0o644))

	cfg := config.Default()
	cfg.APIBaseURL = apiURL
	cfg.DevServer.StaticDir = dir

	h, err := NewRouter(cfg)
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, dir
}

func TestServesStaticFiles(t *testing.T) {
	t.Parallel()

	srv, _ := newDevServer(t, "http://127.0.0.1:1")

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "specFarm")
	require.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	wasm, err := http.Get(srv.URL + "/main.wasm")
	require.NoError(t, err)
	defer wasm.Body.Close()
	require.Equal(t, "application/wasm", wasm.Header.Get("Content-Type"))
}

func TestProxiesLogin(t *testing.T) {
	t.Parallel()

	var gotPath, gotBody, gotForwarded string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotForwarded = r.Header.Get("X-Forwarded-Host")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	}))
	t.Cleanup(api.Close)

	srv, _ := newDevServer(t, api.URL)

	resp, err := http.Post(srv.URL+"/user/login", "application/json", strings.NewReader(`{"userId":"alice","userPw":"pw123"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"token":"abc"}`, string(body))
	require.Equal(t, "/user/login", gotPath)
	require.JSONEq(t, `{"userId":"alice","userPw":"pw123"}`, gotBody)
	require.NotEmpty(t, gotForwarded)
}

func TestProxyFailureIsBadGateway(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.NotFoundHandler())
	apiURL := api.URL
	api.Close()

	srv, _ := newDevServer(t, apiURL)

	resp, err := http.Post(srv.URL+"/user/login", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
