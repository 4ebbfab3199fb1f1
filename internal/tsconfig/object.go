package tsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	yamlv3 "go.yaml.in/yaml/v3"
)

// Object 是保持插入顺序的 JSON 对象。
//
// 值的类型只会是 *Object、[]any、json.Number、string、bool 或 nil。
// 重复 key 覆盖旧值但保留首次出现的位置。
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject 创建空对象。
func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

// Len 返回 key 数量，nil 安全。
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys 返回 key 的副本，顺序与文件一致。
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return append([]string(nil), o.keys...)
}

// Get 读取 key 对应的值。
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]

	return v, ok
}

// Has 判断 key 是否存在（值为 null 也算存在）。
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)

	return ok
}

// Set 写入 key；新 key 追加到末尾。
func (o *Object) Set(key string, value any) *Object {
	if o.values == nil {
		o.values = map[string]any{}
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value

	return o
}

// Object 返回 key 对应的嵌套对象，不存在或类型不符时返回 nil。
func (o *Object) Object(key string) *Object {
	v, _ := o.Get(key)
	child, _ := v.(*Object)

	return child
}

// Clone 深拷贝对象。
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{keys: append([]string(nil), o.keys...), values: make(map[string]any, len(o.values))}
	for k, v := range o.values {
		out.values[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case *Object:
		return typed.Clone()
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = cloneValue(typed[i])
		}
		return out
	default:
		return v
	}
}

// MarshalJSON 按插入顺序输出 key。
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON 解析标准 JSON 对象并保留 key 顺序。
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := ParseValue(data)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return errors.New("root must be an object")
	}
	*o = *obj

	return nil
}

// ParseValue 解析任意 JSON 值，类型与 [Object] 中的值一致。
func ParseValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	return v, nil
}

// MarshalYAML 输出保持顺序的 YAML 映射节点。
func (o *Object) MarshalYAML() (any, error) {
	node := &yamlv3.Node{Kind: yamlv3.MappingNode, Tag: "!!map"}
	if o == nil {
		return node, nil
	}
	for _, k := range o.keys {
		val := &yamlv3.Node{}
		if err := val.Encode(YAMLValue(o.values[k])); err != nil {
			return nil, fmt.Errorf("encode %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: k},
			val,
		)
	}

	return node, nil
}

// YAMLValue 把 json.Number 转换成数值类型，避免 YAML 输出为字符串。
func YAMLValue(v any) any {
	switch typed := v.(type) {
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			return i
		}
		if f, err := typed.Float64(); err == nil {
			return f
		}
		return typed.String()
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = YAMLValue(typed[i])
		}
		return out
	default:
		return v
	}
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("object key must be string, got %v", kt)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}

	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}
