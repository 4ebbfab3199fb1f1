// Package command 提供各子命令共享的设置加载与输出工具。
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/config"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/optiondb"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/render"
	"github.com/lwmacct/260120-go-tsconfig-helper/pkg/cfgm"
)

const (
	// AppName 用于设置文件搜索路径。
	AppName = "tsconfig-helper"
	// EnvPrefix 是设置项的环境变量前缀。
	EnvPrefix = "TSCH_"
	// DefaultFile 是未指定路径时使用的 tsconfig。
	DefaultFile = "./tsconfig.json"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// ErrUsage 表示参数不足或不合法。
var ErrUsage = errors.New("invalid usage")

// GlobalFlags 返回根命令的 flags，子命令均可使用。
//
// flag 名称与设置 key 一一对应（见 cfgm.FlagName），短名通过别名提供。
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "设置文件路径，默认搜索 .tsconfig-helper.yaml 等",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "输出调试日志",
		},
		&cli.StringFlag{
			Name:    "output-format",
			Aliases: []string{"format", "f"},
			Value:   Defaults.Output.Format,
			Usage:   "输出格式 text | json | yaml",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "等同于 --format json",
		},
		&cli.BoolFlag{
			Name:    "output-no-color",
			Aliases: []string{"no-color"},
			Usage:   "禁用彩色输出",
		},
		&cli.StringSliceFlag{
			Name:    "options-tables",
			Aliases: []string{"table"},
			Usage:   "叠加的选项说明表 (可重复)",
		},
	}
}

// NewRoot 创建带全局 flags 的根命令。
func NewRoot(commands ...*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     AppName,
		Usage:    "解释、生成、比较和校验 tsconfig.json",
		Flags:    GlobalFlags(),
		Before:   before,
		Commands: commands,
	}
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("verbose") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	return ctx, nil
}

// LoadSettings 按 默认值 → 设置文件 → 环境变量 → flags 加载工具设置。
func LoadSettings(cmd *cli.Command) (*config.Config, error) {
	cfg, _, err := LoadSettingsInfo(cmd)

	return cfg, err
}

// LoadSettingsInfo 与 [LoadSettings] 相同，额外返回各层来源。
func LoadSettingsInfo(cmd *cli.Command) (*config.Config, *cfgm.Info, error) {
	cfg, info, err := cfgm.LoadInfo(config.DefaultConfig(),
		cfgm.WithCommand(cmd),
		cfgm.WithAppName(AppName),
		cfgm.WithEnvPrefix(EnvPrefix),
		cfgm.WithConfigFile(cmd.String("config")),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	return cfg, info, nil
}

// Stdout 返回根命令的输出流。
func Stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

// NewPrinter 按设置创建输出器；仅当输出流是终端时启用颜色。
func NewPrinter(cmd *cli.Command, cfg *config.Config) (*render.Printer, error) {
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	if cmd.Bool("json") {
		format = render.FormatJSON
	}

	w := Stdout(cmd)
	f, _ := w.(*os.File)

	return render.New(w, format, render.ColorEnabled(f, cfg.Output.NoColor)), nil
}

// OptionDB 加载内置说明表并叠加设置中的自定义表。
func OptionDB(cfg *config.Config) (*optiondb.DB, error) {
	return optiondb.Load(cfg.Options.Tables...)
}

// FileArg 返回第 i 个位置参数，缺省时返回 def。
func FileArg(cmd *cli.Command, i int, def string) string {
	if v := cmd.Args().Get(i); v != "" {
		return v
	}

	return def
}
