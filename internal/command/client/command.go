// Package client 提供 client 命令：调用运行中的 serve 实例。
package client

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
)

// Command 客户端命令
var Command = New()

// New 创建 client 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:  "client",
		Usage: "通过 HTTP 调用 serve 提供的 API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "client-url",
				Aliases: []string{"url"},
				Value:   command.Defaults.Client.URL,
				Usage:   "服务器地址",
			},
			&cli.DurationFlag{
				Name:  "client-timeout",
				Value: command.Defaults.Client.Timeout,
				Usage: "请求超时时间",
			},
			&cli.IntFlag{
				Name:  "client-retries",
				Value: command.Defaults.Client.Retries,
				Usage: "重试次数",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "health",
				Usage:  "检查服务器健康状态",
				Action: healthAction,
			},
			{
				Name:      "explain",
				Usage:     "远程解释 tsconfig",
				ArgsUsage: "[file]",
				Action:    explainAction,
			},
			{
				Name:      "validate",
				Usage:     "远程校验 tsconfig",
				ArgsUsage: "[file]",
				Action:    validateAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "validate-fail-on",
						Aliases: []string{"fail-on"},
						Value:   command.Defaults.Validate.FailOn,
						Usage:   "达到该级别时以非零状态退出 error | warning | info",
					},
					&cli.StringSliceFlag{
						Name:    "validate-disable",
						Aliases: []string{"disable"},
						Usage:   "禁用指定规则 (可重复)",
					},
				},
			},
			{
				Name:      "diff",
				Usage:     "远程比较两份 tsconfig",
				ArgsUsage: "<file-a> <file-b>",
				Action:    diffAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "hide-same",
						Usage: "省略相同的条目",
					},
				},
			},
			{
				Name:      "template",
				Usage:     "获取项目类型的推荐模板",
				ArgsUsage: "<type>",
				Action:    templateAction,
			},
		},
	}
}
