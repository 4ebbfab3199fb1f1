// Package settings 提供 settings 命令：查看生效的工具设置。
package settings

import (
	"github.com/urfave/cli/v3"
)

// Command settings 命令
var Command = New()

// New 创建 settings 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:   "settings",
		Usage:  "输出合并后的工具设置",
		Action: action,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "example",
				Usage: "输出带注释的设置示例文件",
			},
			&cli.BoolFlag{
				Name:  "sources",
				Usage: "同时输出设置文件、环境变量与 flags 的来源",
			},
		},
	}
}
