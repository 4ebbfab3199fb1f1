package cfgm

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/pkg/templexp"
)

// options 配置加载选项。
type options struct {
	appName             string // 应用名称，用于生成默认搜索路径
	cmd                 *cli.Command
	configPaths         []string
	configFile          string // 显式指定的配置文件，必须存在
	baseDir             string // 相对路径的解析基准，空表示当前目录
	envPrefix           string
	lookup              templexp.LookupFunc
	noTemplateExpansion bool
}

// Option 配置加载选项函数。
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths(o.appName)
	}

	return o
}

// WithCommand 绑定 CLI 命令，显式设置的 flags 覆盖其它来源（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径，按顺序查找，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithConfigFile 指定唯一的配置文件；文件不存在时 [Load] 返回 [ErrConfigNotFound]。
//
// path 为空时该选项不生效，便于直接传入 --config 的值。
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithBaseDir 设置相对路径的解析基准，绝对路径不受影响。
func WithBaseDir(path string) Option {
	return func(o *options) {
		o.baseDir = path
	}
}

// WithEnvPrefix 启用环境变量覆盖。
//
// 变量名为前缀加大写的配置 key，"." 与 "-" 转为 "_"。
// 例如前缀 "TSCH_" 时，validate.fail-on 对应 TSCH_VALIDATE_FAIL_ON。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithLookup 替换环境变量查询函数，同时作用于环境变量覆盖与模板展开。
func WithLookup(lookup templexp.LookupFunc) Option {
	return func(o *options) {
		if lookup != nil {
			o.lookup = lookup
		}
	}
}

// WithoutTemplateExpansion 禁用配置文件的 ${...} 展开。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}
