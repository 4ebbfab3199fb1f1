package tsconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Flat 是展平后的配置：点号连接的 key 与叶子值。
type Flat struct {
	keys   []string
	values map[string]any
}

// Flatten 递归展开嵌套对象，数组视为叶子。
//
// 空对象保留为叶子值，使 {"a": {}} 与 {} 能被区分。
func Flatten(obj *Object) *Flat {
	f := &Flat{values: map[string]any{}}
	f.walk(obj, "")

	return f
}

func (f *Flat) walk(obj *Object, prefix string) {
	for _, key := range obj.Keys() {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		v, _ := obj.Get(key)
		if child, ok := v.(*Object); ok && child.Len() > 0 {
			f.walk(child, full)
			continue
		}
		if _, dup := f.values[full]; !dup {
			f.keys = append(f.keys, full)
		}
		f.values[full] = v
	}
}

// Keys 按遍历顺序返回 key。
func (f *Flat) Keys() []string {
	return append([]string(nil), f.keys...)
}

// SortedKeys 按字典序返回 key。
func (f *Flat) SortedKeys() []string {
	keys := f.Keys()
	sort.Strings(keys)

	return keys
}

// Get 读取展平后的值；null 值返回 (nil, true)。
func (f *Flat) Get(key string) (any, bool) {
	v, ok := f.values[key]

	return v, ok
}

// Len 返回叶子数量。
func (f *Flat) Len() int {
	return len(f.keys)
}

// Canonical 返回值的紧凑 JSON 表示，用于相等比较。
func Canonical(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(b)
}

// Equal 判断两个值的 JSON 表示是否一致。
func Equal(a, b any) bool {
	return Canonical(a) == Canonical(b)
}

// FormatValue 把值转换为控制台展示文本。
//
//   - 数组: [a, b, c]
//   - 对象 (*Object 或 map[string]any): 两空格缩进的 JSON
//   - 其它: 原样文本，null 显示为 null
func FormatValue(v any) string {
	switch typed := v.(type) {
	case nil:
		return "null"
	case []any:
		parts := make([]string, len(typed))
		for i, item := range typed {
			parts[i] = formatItem(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Object:
		raw, err := typed.MarshalJSON()
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return string(raw)
		}
		return buf.String()
	case map[string]any:
		raw, err := json.MarshalIndent(typed, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatItem 处理数组元素；对象元素用紧凑 JSON，避免在一行内换行。
func formatItem(v any) string {
	switch v.(type) {
	case *Object, map[string]any:
		return Canonical(v)
	case []any:
		return FormatValue(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
