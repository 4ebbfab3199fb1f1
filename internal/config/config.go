// Package config 定义 tsconfig-helper 自身的设置。
//
// 设置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 设置文件 - .tsconfig-helper.yaml / ~/.tsconfig-helper.yaml / /etc/tsconfig-helper/config.yaml
//  3. 环境变量 - TSCH_ 前缀
//  4. CLI flags - 仅显式设置的 flag
package config

import (
	"time"
)

// Config 工具设置。
type Config struct {
	Verbose  bool           `json:"verbose" yaml:"verbose" desc:"输出调试日志"`
	Output   OutputConfig   `json:"output" yaml:"output" desc:"输出设置"`
	Options  OptionsConfig  `json:"options" yaml:"options" desc:"选项说明表"`
	Validate ValidateConfig `json:"validate" yaml:"validate" desc:"校验设置"`
	Server   ServerConfig   `json:"server" yaml:"server" desc:"HTTP 服务配置"`
	Client   ClientConfig   `json:"client" yaml:"client" desc:"HTTP 客户端配置"`
}

// OutputConfig 输出设置。
//
//nolint:tagliatelle
type OutputConfig struct {
	Format  string `json:"format" yaml:"format" desc:"输出格式 text | json | yaml"`
	NoColor bool   `json:"no-color" yaml:"no-color" desc:"禁用彩色输出"`
}

// OptionsConfig 选项说明表设置。
type OptionsConfig struct {
	Tables []string `json:"tables" yaml:"tables" desc:"叠加在内置表之上的 YAML/JSON 说明表"`
}

// ValidateConfig 校验设置。
//
//nolint:tagliatelle
type ValidateConfig struct {
	FailOn  string   `json:"fail-on" yaml:"fail-on" desc:"达到该级别时以非零状态退出 error | warning | info"`
	Disable []string `json:"disable" yaml:"disable" desc:"禁用的规则 ID"`
}

// ServerConfig 服务端配置。
//
//nolint:tagliatelle
type ServerConfig struct {
	Addr     string        `json:"addr" yaml:"addr" desc:"服务器监听地址"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout" desc:"HTTP 读写超时"`
	Idletime time.Duration `json:"idletime" yaml:"idletime" desc:"HTTP 空闲超时"`
	MaxBody  int64         `json:"max-body" yaml:"max-body" desc:"请求体大小上限 (字节)"`
}

// ClientConfig 客户端配置。
type ClientConfig struct {
	URL     string        `json:"url" yaml:"url" desc:"服务器地址"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" desc:"请求超时时间"`
	Retries int           `json:"retries" yaml:"retries" desc:"重试次数"`
}

// DefaultConfig 返回默认设置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Format: "text",
		},
		Validate: ValidateConfig{
			FailOn: "error",
		},
		Server: ServerConfig{
			Addr:     ":40118",
			Timeout:  15 * time.Second,
			Idletime: 60 * time.Second,
			MaxBody:  1 << 20,
		},
		Client: ClientConfig{
			URL:     "http://localhost:40118",
			Timeout: 30 * time.Second,
			Retries: 3,
		},
	}
}
