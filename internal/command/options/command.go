// Package options 提供 options 命令：查看选项说明表。
package options

import (
	"github.com/urfave/cli/v3"
)

// Command options 命令
var Command = New()

// New 创建 options 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:      "options",
		Usage:     "列出已知选项，或解释单个选项",
		ArgsUsage: "[name]",
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "只列出该分类的编译选项",
			},
		},
	}
}
