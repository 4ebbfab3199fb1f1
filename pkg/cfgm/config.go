package cfgm

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/lwmacct/260120-go-tsconfig-helper/pkg/templexp"
)

// ErrConfigNotFound 表示 [WithConfigFile] 指定的文件不存在。
var ErrConfigNotFound = errors.New("config file not found")

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
//  1. ./.appname.yaml
//  2. ./.appname.json
//  3. ~/.appname.yaml
//  4. /etc/appname/config.yaml
//
// appName 为空时返回 nil。
func DefaultPaths(appName string) []string {
	if appName == "" {
		return nil
	}

	paths := []string{"." + appName + ".yaml", "." + appName + ".json"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
	}

	return append(paths, "/etc/"+appName+"/config.yaml")
}

// Info 记录一次加载中各层的来源。
//
// File 为生效的配置文件，未找到时为空；Env 与 Flags 为生效的环境变量名与 flag 名。
type Info struct {
	File  string   `json:"file,omitempty" yaml:"file,omitempty"`
	Env   []string `json:"env,omitempty" yaml:"env,omitempty"`
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigFile] / [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	cfg, _, err := LoadInfo(defaultConfig, opts...)

	return cfg, err
}

// LoadInfo 与 [Load] 相同，额外返回各层的来源信息。
func LoadInfo[T any](defaultConfig T, opts ...Option) (*T, *Info, error) {
	o := newOptions(opts)
	info := &Info{}
	configMap := defaultsMap(defaultConfig)

	fileMap, path, err := o.readFile()
	if err != nil {
		return nil, nil, err
	}
	if path != "" {
		MergeMaps(configMap, fileMap)
		info.File = path
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)
	} else {
		slog.Debug("No config file found, using defaults", "paths", o.configPaths)
	}

	if o.envPrefix != "" {
		bindings := envBindings(o.envPrefix, configKeys(reflect.TypeOf(defaultConfig)))
		envKeys := make([]string, 0, len(bindings))
		for envKey := range bindings {
			envKeys = append(envKeys, envKey)
		}
		sort.Strings(envKeys)

		for _, envKey := range envKeys {
			if val, ok := o.lookup(envKey); ok && val != "" {
				setPath(configMap, bindings[envKey], val)
				info.Env = append(info.Env, envKey)
				slog.Debug("Loaded env binding", "env", envKey, "path", bindings[envKey])
			}
		}
	}

	if o.cmd != nil {
		info.Flags = applyFlags(o.cmd, configMap, reflect.TypeOf(defaultConfig), "")
	}

	var cfg T
	if err := Decode(configMap, &cfg); err != nil {
		return nil, nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, info, nil
}

// readFile 返回首个命中的配置文件内容；未命中时 path 为空。
func (o *options) readFile() (map[string]any, string, error) {
	candidates := o.configPaths
	if o.configFile != "" {
		candidates = []string{o.configFile}
	}

	for _, p := range candidates {
		if !filepath.IsAbs(p) && o.baseDir != "" {
			p = filepath.Join(o.baseDir, p)
		}

		content, err := os.ReadFile(p) //nolint:gosec // path comes from the user or the default search list
		if err != nil {
			if o.configFile != "" {
				if errors.Is(err, os.ErrNotExist) {
					return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, p)
				}
				return nil, "", fmt.Errorf("read config file %s: %w", p, err)
			}
			continue
		}

		if !o.noTemplateExpansion {
			expanded, err := templexp.Expand(string(content), o.lookup)
			if err != nil {
				return nil, "", fmt.Errorf("expand template in %s: %w", p, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := ParseMap(p, content)
		if err != nil {
			return nil, "", fmt.Errorf("parse config file %s: %w", p, err)
		}

		return fileMap, p, nil
	}

	return nil, "", nil
}

// configKeys 递归收集结构体的叶子 key（以 json tag 为准）。
func configKeys(typ reflect.Type) []string {
	var keys []string
	collectKeys(typ, "", &keys)

	return keys
}

func collectKeys(typ reflect.Type, prefix string, keys *[]string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}
		fullKey := joinKey(prefix, key)

		if isStructType(field.Type) {
			collectKeys(field.Type, fullKey, keys)
			continue
		}
		*keys = append(*keys, fullKey)
	}
}

// envBindings 生成 环境变量名 → 配置 key 的映射。
//
// 前缀 "TSCH_" 时：
//   - output.format → TSCH_OUTPUT_FORMAT
//   - validate.fail-on → TSCH_VALIDATE_FAIL_ON
func envBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
