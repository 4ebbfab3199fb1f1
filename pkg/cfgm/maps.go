package cfgm

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/tailscale/hujson"
	yamlv3 "go.yaml.in/yaml/v3"
)

// ErrNotObject 表示文件的根节点不是对象。
var ErrNotObject = errors.New("root must be an object")

// ParseMap 把 YAML 或 JSON 文本解析为嵌套 map，格式由 name 的扩展名决定。
//
// .json 文件允许注释与尾随逗号；其余扩展名按 YAML 解析。空文档返回空 map。
func ParseMap(name string, content []byte) (map[string]any, error) {
	var raw any
	if strings.EqualFold(filepath.Ext(name), ".json") {
		std, err := hujson.Standardize(content)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(std, &raw); err != nil {
			return nil, err
		}
	} else if err := yamlv3.Unmarshal(content, &raw); err != nil {
		return nil, err
	}

	if raw == nil {
		return map[string]any{}, nil
	}
	m, ok := stringKeys(raw).(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	return m, nil
}

// MergeMaps 把 src 递归合并进 dst：两侧都是对象时逐 key 合并，否则 src 覆盖。
func MergeMaps(dst, src map[string]any) {
	for key, value := range src {
		sub, isMap := value.(map[string]any)
		target, hasMap := dst[key].(map[string]any)
		if isMap && hasMap {
			MergeMaps(target, sub)
		} else {
			dst[key] = value
		}
	}
}

// Decode 按 json tag 把 map 解码到 out。
//
// 字符串可转为 time.Duration，逗号分隔的字符串可转为切片（环境变量的写法）。
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return dec.Decode(data)
}

// stringKeys 把 YAML 解出的 map[any]any 统一为 map[string]any。
func stringKeys(val any) any {
	switch v := val.(type) {
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, item := range v {
			m[fmt.Sprint(k)] = stringKeys(item)
		}
		return m
	case map[string]any:
		for k, item := range v {
			v[k] = stringKeys(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = stringKeys(item)
		}
		return v
	}

	return val
}

// setPath 按点分 key 写入 value，沿途缺失的对象会被创建。
func setPath(m map[string]any, key string, value any) {
	head, rest, nested := strings.Cut(key, ".")
	if !nested {
		m[head] = value
		return
	}

	child, ok := m[head].(map[string]any)
	if !ok {
		child = map[string]any{}
		m[head] = child
	}
	setPath(child, rest, value)
}
