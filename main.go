package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/client"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/diff"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/explain"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/initcmd"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/options"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/server"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/settings"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/validate"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/version"
)

func main() {
	app := command.NewRoot(
		explain.Command,
		initcmd.Command,
		diff.Command,
		validate.Command,
		options.Command,
		server.Command,
		client.Command,
		settings.Command,
		version.Command,
	)
	app.Version = version.Get().Version

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
