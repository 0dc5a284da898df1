package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "http://localhost:8080/user/login", cfg.LoginURL())
	require.Equal(t, "rememberUserId", cfg.Storage.RememberKey)
	require.Equal(t, "ACCESS_TOKEN", cfg.Storage.TokenKey)
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	cfg, err := Parse([]byte(`
api_base_url: "https://api.specfarm.example/"
request_timeout: 3s
federated:
  - name: kakao
    label: "카카오"
    url: "/oauth2/authorization/kakao"
`))
	require.NoError(t, err)
	require.Equal(t, "https://api.specfarm.example/user/login", cfg.LoginURL())
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/", cfg.DefaultRedirect)
	require.Len(t, cfg.Federated, 1)
	require.Equal(t, "kakao", cfg.Federated[0].Name)
	require.Equal(t, "https://api.specfarm.example/oauth2/authorization/kakao", cfg.FederatedURL(cfg.Federated[0]))
	require.Equal(t, "https://accounts.example/x", cfg.FederatedURL(FederatedLogin{Name: "g", URL: "https://accounts.example/x"}))
}

func TestParseExpandsEnv(t *testing.T) {
	t.Setenv("SPECFARM_TEST_LEVEL", "debug")

	cfg, err := Parse([]byte(`log_level: "${SPECFARM_TEST_LEVEL}"`))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestParseAPIBaseURLOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://override.example")

	cfg, err := Parse([]byte(`api_base_url: "http://localhost:9999"`))
	require.NoError(t, err)
	require.Equal(t, "https://override.example", cfg.APIBaseURL)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad scheme":        `api_base_url: "ftp://x"`,
		"relative path":     `login_path: "user/login"`,
		"zero timeout":      `request_timeout: 0s`,
		"missing key":       "storage:\n  token_key: \"\"",
		"federated w/o url": "federated:\n  - name: kakao",
		"not yaml":          "api_base_url: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoadAndCredentialsPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "app-config.yaml")
	credPath := filepath.Join(dir, "creds.json")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  credentials_file: "+credPath+"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	got, err := cfg.CredentialsPath()
	require.NoError(t, err)
	require.Equal(t, credPath, got)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
