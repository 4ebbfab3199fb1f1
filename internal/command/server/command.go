// Package server 提供 serve 命令：以 HTTP JSON API 提供 explain / validate / diff / init。
package server

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
)

// Command 服务器命令
var Command = New()

// New 创建 serve 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"server"},
		Usage:   "启动 HTTP 服务器",
		Action:  action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server-addr",
				Aliases: []string{"a"},
				Value:   command.Defaults.Server.Addr,
				Usage:   "服务器监听地址",
			},
			&cli.DurationFlag{
				Name:  "server-timeout",
				Value: command.Defaults.Server.Timeout,
				Usage: "HTTP 读写超时",
			},
			&cli.DurationFlag{
				Name:  "server-idletime",
				Value: command.Defaults.Server.Idletime,
				Usage: "HTTP 空闲超时",
			},
			&cli.Int64Flag{
				Name:  "server-max-body",
				Value: command.Defaults.Server.MaxBody,
				Usage: "请求体大小上限 (字节)",
			},
			&cli.StringSliceFlag{
				Name:    "validate-disable",
				Aliases: []string{"disable"},
				Usage:   "/validate 默认禁用的规则 (可重复)",
			},
		},
	}
}
