package cfgm

import (
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"
)

// FlagName 返回配置 key 对应的 CLI flag 名称，仅把 "." 替换为 "-"。
//
//   - server.addr → server-addr
//   - validate.fail-on → validate-fail-on
func FlagName(key string) string {
	return strings.ReplaceAll(key, ".", "-")
}

// applyFlags 把显式设置的 flags 写入配置 map，返回生效的 flag 名称。
//
// flag 可以挂在 cmd 或其任意上级命令上，别名设置同样生效。
func applyFlags(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) []string {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	var applied []string
	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}
		fullKey := joinKey(prefix, key)

		if isStructType(field.Type) {
			applied = append(applied, applyFlags(cmd, config, field.Type, fullKey)...)
			continue
		}

		name := FlagName(fullKey)
		if !cmd.IsSet(name) {
			continue
		}
		if value, ok := flagValue(cmd, name, field.Type); ok {
			setPath(config, fullKey, value)
			applied = append(applied, name)
		}
	}

	return applied
}

// flagValue 按字段类型读取 flag 值，不支持的类型返回 false。
func flagValue(cmd *cli.Command, name string, typ reflect.Type) (any, bool) {
	if typ == durationType {
		return cmd.Duration(name), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(name), true
	case reflect.Bool:
		return cmd.Bool(name), true
	case reflect.Int:
		return cmd.Int(name), true
	case reflect.Int64:
		return cmd.Int64(name), true
	case reflect.Uint:
		return cmd.Uint(name), true
	case reflect.Uint64:
		return cmd.Uint64(name), true
	case reflect.Float64:
		return cmd.Float64(name), true
	case reflect.Slice:
		switch typ.Elem().Kind() {
		case reflect.String:
			return cmd.StringSlice(name), true
		case reflect.Int:
			return cmd.IntSlice(name), true
		}
	case reflect.Map:
		if typ.Key().Kind() == reflect.String && typ.Elem().Kind() == reflect.String {
			return cmd.StringMap(name), true
		}
	}

	return nil, false
}
