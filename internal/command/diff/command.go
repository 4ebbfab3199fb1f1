// Package diff 提供 diff 命令：比较两份 tsconfig。
package diff

import (
	"github.com/urfave/cli/v3"
)

// Command diff 命令
var Command = New()

// New 创建 diff 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "比较两份 tsconfig 的差异",
		ArgsUsage: "<file-a> <file-b>",
		Action:    action,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "unified",
				Aliases: []string{"u"},
				Usage:   "输出统一文本差异",
			},
			&cli.BoolFlag{
				Name:  "hide-same",
				Usage: "结构化输出中省略相同的条目",
			},
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "存在差异时以非零状态退出",
			},
		},
	}
}
