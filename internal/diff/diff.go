// Package diff 比较两份 tsconfig 的结构差异。
package diff

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
)

// Status 是单个 key 的比较结果。
type Status string

const (
	Added   Status = "added"   // 仅存在于 B
	Removed Status = "removed" // 仅存在于 A
	Changed Status = "changed"
	Same    Status = "same"
)

// Entry 是单个展平 key 的比较结果。
//
// FileA 只对 removed/changed/same 有意义，FileB 只对 added/changed/same 有意义；
// 序列化时按状态输出，null 值同样会被写出。
type Entry struct {
	Option string
	FileA  any
	FileB  any
	Status Status
}

func (e Entry) hasA() bool { return e.Status != Added }
func (e Entry) hasB() bool { return e.Status != Removed }

type entryJSON struct {
	Option string          `json:"option"`
	FileA  json.RawMessage `json:"fileA,omitempty"`
	FileB  json.RawMessage `json:"fileB,omitempty"`
	Status Status          `json:"status"`
}

// MarshalJSON 按状态写出 fileA/fileB。
func (e Entry) MarshalJSON() ([]byte, error) {
	out := entryJSON{Option: e.Option, Status: e.Status}
	var err error
	if e.hasA() {
		if out.FileA, err = json.Marshal(e.FileA); err != nil {
			return nil, fmt.Errorf("encode %s: %w", e.Option, err)
		}
	}
	if e.hasB() {
		if out.FileB, err = json.Marshal(e.FileB); err != nil {
			return nil, fmt.Errorf("encode %s: %w", e.Option, err)
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON 把值解码为与 [tsconfig.Object] 相同的类型，保留对象 key 顺序。
func (e *Entry) UnmarshalJSON(data []byte) error {
	var in entryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*e = Entry{Option: in.Option, Status: in.Status}
	var err error
	if len(in.FileA) > 0 {
		if e.FileA, err = tsconfig.ParseValue(in.FileA); err != nil {
			return fmt.Errorf("decode %s: %w", in.Option, err)
		}
	}
	if len(in.FileB) > 0 {
		if e.FileB, err = tsconfig.ParseValue(in.FileB); err != nil {
			return fmt.Errorf("decode %s: %w", in.Option, err)
		}
	}

	return nil
}

// MarshalYAML 按状态写出 fileA/fileB，数值保持数值类型。
func (e Entry) MarshalYAML() (any, error) {
	node := &yamlv3.Node{Kind: yamlv3.MappingNode, Tag: "!!map"}
	add := func(key string, v any) error {
		val := &yamlv3.Node{}
		if err := val.Encode(tsconfig.YAMLValue(v)); err != nil {
			return fmt.Errorf("encode %s.%s: %w", e.Option, key, err)
		}
		node.Content = append(node.Content, &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: key}, val)
		return nil
	}

	if err := add("option", e.Option); err != nil {
		return nil, err
	}
	if e.hasA() {
		if err := add("fileA", e.FileA); err != nil {
			return nil, err
		}
	}
	if e.hasB() {
		if err := add("fileB", e.FileB); err != nil {
			return nil, err
		}
	}
	if err := add("status", string(e.Status)); err != nil {
		return nil, err
	}

	return node, nil
}

// Summary 统计各状态数量。
type Summary struct {
	Added   int `json:"added" yaml:"added"`
	Removed int `json:"removed" yaml:"removed"`
	Changed int `json:"changed" yaml:"changed"`
	Same    int `json:"same" yaml:"same"`
}

// Identical 表示两份配置没有差异。
func (s Summary) Identical() bool {
	return s.Added == 0 && s.Removed == 0 && s.Changed == 0
}

// Compare 展平 a 与 b，按 key 字典序返回并集上的比较结果。
//
// 值为 null 的 key 视为存在；值的比较基于紧凑 JSON 表示。
func Compare(a, b *tsconfig.Object) []Entry {
	flatA := tsconfig.Flatten(a)
	flatB := tsconfig.Flatten(b)

	union := map[string]struct{}{}
	for _, k := range flatA.Keys() {
		union[k] = struct{}{}
	}
	for _, k := range flatB.Keys() {
		union[k] = struct{}{}
	}
	keys := make([]string, 0, len(union))
	for k := range union {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		va, inA := flatA.Get(key)
		vb, inB := flatB.Get(key)

		switch {
		case !inA:
			entries = append(entries, Entry{Option: key, FileB: vb, Status: Added})
		case !inB:
			entries = append(entries, Entry{Option: key, FileA: va, Status: Removed})
		case !tsconfig.Equal(va, vb):
			entries = append(entries, Entry{Option: key, FileA: va, FileB: vb, Status: Changed})
		default:
			entries = append(entries, Entry{Option: key, FileA: va, FileB: vb, Status: Same})
		}
	}

	return entries
}

// Summarize 统计 entries 的状态分布。
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Status {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Changed:
			s.Changed++
		case Same:
			s.Same++
		}
	}

	return s
}

// Filter 返回状态属于 statuses 的条目，保持原顺序。
func Filter(entries []Entry, statuses ...Status) []Entry {
	var out []Entry
	for _, e := range entries {
		if slices.Contains(statuses, e.Status) {
			out = append(out, e)
		}
	}

	return out
}

// Unified 生成两份配置格式化后的统一文本差异；无差异时返回空字符串。
func Unified(nameA string, a *tsconfig.Object, nameB string, b *tsconfig.Object) (string, error) {
	textA, err := tsconfig.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", nameA, err)
	}
	textB, err := tsconfig.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", nameB, err)
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(textA)),
		B:        difflib.SplitLines(string(textB)),
		FromFile: nameA,
		ToFile:   nameB,
		Context:  3,
	})
}
