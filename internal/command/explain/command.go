// Package explain 提供 explain 命令：逐项解释 tsconfig。
package explain

import (
	"github.com/urfave/cli/v3"
)

// Command explain 命令
var Command = New()

// New 创建 explain 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:      "explain",
		Usage:     "逐项解释 tsconfig 中的配置",
		ArgsUsage: "[file]",
		Action:    action,
	}
}
