package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"specfarm-front/internal/authclient"
	"specfarm-front/internal/config"
	"specfarm-front/internal/loginform"
	"specfarm-front/internal/storage"
	"specfarm-front/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
)

func main() {
	configPath := flag.String("config", "", "path to app-config.yaml (defaults are used when empty)")
	target := flag.String("target", "", "path to continue to after login")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.LogErr(err, "failed to load configuration", "path", *configPath)
			os.Exit(1)
		}
		cfg = loaded
	}
	// log lines written while the UI is up would tear the screen
	logger.SetLogLevel("error")

	credPath, err := cfg.CredentialsPath()
	if err != nil {
		logger.LogErr(err, "no place for the remembered id")
		os.Exit(1)
	}
	creds, err := storage.OpenFileStore(credPath)
	if err != nil {
		logger.LogErr(err, "failed to open credential file", "path", credPath)
		os.Exit(1)
	}

	dest := cfg.DefaultRedirect
	if *target != "" {
		dest = *target
	}

	var landed string
	form := loginform.New(loginform.Options{
		Auth:        authclient.New(cfg.LoginURL(), cfg.RequestTimeout),
		Credentials: creds,
		Session:     storage.NewMemoryStore(),
		Navigator:   loginform.NavigatorFunc(func(p string) { landed = p }),
		Target:      dest,
		RememberKey: cfg.Storage.RememberKey,
		TokenKey:    cfg.Storage.TokenKey,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	form.Mount(ctx)
	defer form.Unmount()

	final, err := tea.NewProgram(tui.New(form), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		logger.LogErr(err, "login ui failed")
		os.Exit(1)
	}

	if m, ok := final.(tui.Model); ok && m.LoggedIn() {
		fmt.Printf("logged in, continuing to %s\n", landed)
		return
	}
	os.Exit(1)
}
