// Command server 只包含 serve 功能的独立二进制，适合容器部署。
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	app "github.com/lwmacct/260120-go-tsconfig-helper/internal/command/server"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/version"
)

func main() {
	root := command.NewRoot(version.Command)
	root.Name = command.AppName + "-server"
	root.Usage = app.Command.Usage
	root.Action = app.Command.Action
	root.Flags = append(root.Flags, app.Command.Flags...)
	root.Version = version.Get().Version

	if err := root.Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
