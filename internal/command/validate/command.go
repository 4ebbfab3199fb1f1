// Package validate 提供 validate 命令：检查 tsconfig 中的常见问题。
package validate

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
)

// Command validate 命令
var Command = New()

// New 创建 validate 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "检查 tsconfig 中相互矛盾或欠佳的设置",
		ArgsUsage: "[file]",
		Action:    action,
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
			&cli.BoolFlag{
				Name:  "list-rules",
				Usage: "列出全部规则后退出",
			},
		},
	}
}
