package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/craftstore/internal/client/cli"
	"github.com/dmitrijs2005/craftstore/internal/client/config"
	"github.com/dmitrijs2005/craftstore/internal/logging"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	// the REPL owns stdout, so logs go to stderr
	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.NewApp(cfg, logger).Run(ctx)

}
