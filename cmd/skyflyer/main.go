package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/lallassu/skyflyer/internal/config"
	"github.com/lallassu/skyflyer/internal/game"
	"github.com/lallassu/skyflyer/internal/logging"
)

func main() {
	fs := pflag.NewFlagSet("skyflyer", pflag.ExitOnError)
	config.Flags(fs)
	_ = fs.Parse(os.Args[1:])

	path, _ := fs.GetString("config")
	cfg, err := config.Load(path, fs)
	if err != nil {
		boot := logging.New(os.Stderr, "info")
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logging.New(os.Stderr, cfg.LogLevel)

	if err := game.Run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("skyflyer")
	}
}
