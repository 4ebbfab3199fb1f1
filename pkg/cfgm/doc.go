// Package cfgm 提供分层的配置加载。
//
// 配置按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 描述，YAML 与 JSON 共享同一套 key；
// JSON 配置文件允许注释与尾随逗号。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - [WithConfigFile]、[WithConfigPaths] 或 [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]，仅使用显式设置的 flag
//
// # 快速开始
//
//	type Config struct {
//	    Format  string        `json:"format"  desc:"输出格式"`
//	    Timeout time.Duration `json:"timeout" desc:"超时时间"`
//	}
//
//	cfg, err := cfgm.Load(DefaultConfig(),
//	    cfgm.WithCommand(cmd),
//	    cfgm.WithAppName("tsconfig-helper"),
//	    cfgm.WithEnvPrefix("TSCH_"),
//	    cfgm.WithConfigFile(cmd.String("config")),
//	)
//
// # 配置文件路径
//
// [WithAppName] 会生成默认搜索路径（见 [DefaultPaths]），命中首个文件即停止。
// [WithConfigFile] 指定的文件必须存在，且不再搜索其它路径。
//
// # 环境变量(前缀)
//
// 前缀加大写的配置 key，"." 与 "-" 转为 "_"：
//   - TSCH_OUTPUT_FORMAT → output.format
//   - TSCH_VALIDATE_FAIL_ON → validate.fail-on
//
// 列表字段以逗号分隔，例如 TSCH_VALIDATE_DISABLE=skip-lib-check,declaration-map。
//
// # 模板展开
//
// 配置文件在解析前进行 ${...} 展开（见 pkg/templexp），
// 使用 [WithoutTemplateExpansion] 可禁用：
//
//	server:
//	  addr: "${TSCH_LISTEN:-:40118}"
//
// # CLI Flag 映射
//
// 见 [FlagName]，仅替换 "." 为 "-"：
//   - server.addr → --server-addr
//   - validate.fail-on → --validate-fail-on
//
// # 生成配置示例
//
// [ExampleYAML] 根据 json 与 desc 标签生成带注释的 YAML。
package cfgm
