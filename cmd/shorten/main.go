// Command shorten submits one URL to the shortening service and prints the
// short URL, or the error, the way the web form would show it.
//
// Usage:
//
//	shorten [flags] <url> [custom_code]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/url-shortener-client/internal/client"
	"github.com/MikhailRaia/url-shortener-client/internal/config"
	"github.com/MikhailRaia/url-shortener-client/internal/form"
	"github.com/MikhailRaia/url-shortener-client/internal/logger"
	"github.com/MikhailRaia/url-shortener-client/internal/submission"
)

func main() {
	title := flag.String("title", "", "Optional title stored with the URL")
	expireDays := flag.String("expire", "", "Optional number of days until the short URL expires")

	cfg := config.NewClientConfig()

	log.Logger = logger.NewLogger(os.Stderr, cfg.LogLevel)

	fields, err := form.ParseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <url> [custom_code]: %v\n", os.Args[0], err)
		os.Exit(2)
	}
	fields[submission.FieldTitle] = *title
	fields[submission.FieldExpireAfterDays] = *expireDays

	shortener := client.New(cfg.ServiceURL, client.WithTimeout(cfg.RequestTimeout))
	controller := submission.NewController(shortener, submission.StaticOrigin(cfg.Origin()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	state := controller.Submit(ctx, fields)
	stop()

	if msg, failed := state.ErrorMessage(); failed {
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}

	result, _ := state.Result()
	fmt.Println(result)
}
