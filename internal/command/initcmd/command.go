// Package initcmd 提供 init 命令：按项目类型生成推荐的 tsconfig。
package initcmd

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/templates"
)

// Command init 命令
var Command = New()

// New 创建 init 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "生成推荐的 tsconfig.json",
		ArgsUsage: "[output]",
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "项目类型 " + strings.Join(templates.TypeNames(), " | "),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出路径，也可作为位置参数传入 (默认 ./tsconfig.json)",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "在终端中交互选择项目类型与输出路径",
			},
		},
	}
}
