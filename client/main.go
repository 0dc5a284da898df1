//go:build js && wasm

package main

import (
	_ "embed"

	"specfarm-front/internal/config"

	"github.com/hexops/vecty"
	"github.com/rohanthewiz/logger"
)

//go:embed app-config.yaml
var appConfig []byte

func main() {
	cfg, err := config.Parse(appConfig)
	if err != nil {
		logger.LogErr(err, "falling back to default config")
		cfg = config.Default()
	}
	logger.SetLogLevel(cfg.LogLevel)

	vecty.SetTitle("로그인 - specFarm")
	vecty.RenderBody(NewApp(cfg))

	// keep the wasm program alive for event callbacks
	select {}
}
