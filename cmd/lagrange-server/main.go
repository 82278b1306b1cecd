// Command lagrange-server serves Lagrange interpolation over HTTP.
//
//	POST /compute  {"points":[{"x":0,"y":1}],"x":0.5}
//	GET  /health
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblagrange/server"
)

func main() {
	configURL := flag.String("config", "", "YAML config (path or afs URL)")
	listen := flag.String("listen", "", "listen address, overrides the config")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := server.LoadConfig(ctx, *configURL)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("config", *configURL)).Fatal("load config failed")
	}

	if *listen != "" {
		cfg.Listen = *listen
	}

	srv, err := server.NewServer(ctx, cfg, logger)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("start server failed")
	}

	srv.Wait()
}
