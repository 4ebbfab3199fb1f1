// Package templates 提供常见项目类型的推荐 tsconfig。
package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
)

// ProjectType 是项目类型。
type ProjectType string

const (
	React   ProjectType = "react"
	Node    ProjectType = "node"
	Library ProjectType = "library"
	NextJS  ProjectType = "nextjs"
)

var (
	// ErrUnknownType 表示不支持的项目类型。
	ErrUnknownType = errors.New("unknown project type")
	// ErrExists 表示输出文件已存在。
	ErrExists = errors.New("file already exists")
)

// Types 返回全部项目类型，顺序固定。
func Types() []ProjectType {
	return []ProjectType{React, Node, Library, NextJS}
}

// TypeNames 返回项目类型名称列表。
func TypeNames() []string {
	types := Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	return names
}

// Get 返回 projectType 对应模板的新副本。
func Get(projectType ProjectType) (*tsconfig.Object, error) {
	build, ok := builders[projectType]
	if !ok {
		return nil, fmt.Errorf("%w: %s. Available: %s", ErrUnknownType, projectType, strings.Join(TypeNames(), ", "))
	}

	return build(), nil
}

// Write 把模板写入 path 并返回绝对路径；path 已存在时失败。
func Write(path string, projectType ProjectType) (string, error) {
	tmpl, err := Get(projectType)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	content, err := tsconfig.Marshal(tmpl)
	if err != nil {
		return "", fmt.Errorf("format template: %w", err)
	}

	// O_EXCL 保证检查与创建是同一步
	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // output path is chosen by the user
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s. Remove it first or use a different path", ErrExists, abs)
		}
		return "", fmt.Errorf("create %s: %w", abs, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", abs, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", abs, err)
	}

	return abs, nil
}

// Highlight 是模板的一项关键设置。
type Highlight struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Highlights 返回模板的关键设置摘要：严格模式、target、module，
// react 与 nextjs 额外包含 jsx。
func Highlights(projectType ProjectType) ([]Highlight, error) {
	tmpl, err := Get(projectType)
	if err != nil {
		return nil, err
	}
	opts := tsconfig.CompilerOptions(tmpl)

	strict := "✗ disabled"
	if v, _ := opts.Get("strict"); v == true {
		strict = "✓ enabled"
	}
	out := []Highlight{
		{Label: "Strict mode", Value: strict},
		{Label: "Target", Value: valueOf(opts, "target")},
		{Label: "Module", Value: valueOf(opts, "module")},
	}
	if projectType == React || projectType == NextJS {
		out = append(out, Highlight{Label: "JSX", Value: valueOf(opts, "jsx")})
	}

	return out, nil
}

func valueOf(obj *tsconfig.Object, key string) string {
	v, _ := obj.Get(key)

	return tsconfig.FormatValue(v)
}
