package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"weather_card/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := cli.NewRootCommand(cli.DefaultServices)
	root.SetContext(ctx)

	code := cli.Execute(root)
	stop()
	os.Exit(code)
}
