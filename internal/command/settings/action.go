package settings

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/config"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/render"
	"github.com/lwmacct/260120-go-tsconfig-helper/pkg/cfgm"
)

// withSources 是 --sources 的输出结构。
type withSources struct {
	Settings *config.Config `json:"settings" yaml:"settings"`
	Sources  *cfgm.Info     `json:"sources" yaml:"sources"`
}

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("example") {
		_, err := fmt.Fprint(command.Stdout(cmd), string(cfgm.ExampleYAML(config.DefaultConfig())))
		return err
	}

	cfg, info, err := command.LoadSettingsInfo(cmd)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if format == render.FormatText || cmd.Bool("json") {
		// 设置本身没有文本排版，text 按 YAML 输出
		format = render.FormatYAML
		if cmd.Bool("json") {
			format = render.FormatJSON
		}
	}
	printer := render.New(command.Stdout(cmd), format, false)

	if cmd.Bool("sources") {
		return printer.Data(withSources{Settings: cfg, Sources: info})
	}

	return printer.Data(cfg)
}
