// Package main starts a darts checkout practice run.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	practicecmd "github.com/Vojb/busted-dart/internal/cmd/practice"
	"github.com/Vojb/busted-dart/internal/platform/config"
)

func main() {
	cfg, err := practicecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[PRACTICE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := practicecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("practice failed: %v", err)
	}
}
