// Package tsconfig 读取、展平与格式化 tsconfig.json 文档。
//
// 文件允许注释与尾随逗号（JSONC），解析前先通过 hujson 标准化为 JSON，
// 注释与逗号被替换为空白，因此错误位置仍对应原文件的行列。
package tsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

var (
	// ErrNotFound 表示配置文件不存在。
	ErrNotFound = errors.New("file not found")
	// ErrParse 表示清理后的内容不是合法 JSON 对象。
	ErrParse = errors.New("invalid JSON")
)

// Clean 去除注释与尾随逗号，返回标准 JSON。
//
// 输入不会被修改；返回内容与输入等长。
func Clean(data []byte) ([]byte, error) {
	buf := bytes.Clone(data)
	// UTF-8 BOM 在 Windows 生成的 tsconfig 中很常见
	buf = bytes.TrimPrefix(buf, []byte("\xef\xbb\xbf"))

	return hujson.Standardize(buf)
}

// Parse 解析 data，name 只用于错误信息。
func Parse(name string, data []byte) (*Object, error) {
	cleaned, err := Clean(data)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrParse, name, err)
	}

	obj := &Object{}
	if err := obj.UnmarshalJSON(cleaned); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			line, col := position(cleaned, se.Offset)
			return nil, fmt.Errorf("%w in %s at line %d, column %d: %w", ErrParse, name, line, col, err)
		}
		return nil, fmt.Errorf("%w in %s: %w", ErrParse, name, err)
	}

	return obj, nil
}

// Load 读取并解析 path 指向的文件。
func Load(path string) (*Object, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	data, err := os.ReadFile(abs) //nolint:gosec // path is supplied by the user on purpose
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return nil, fmt.Errorf("read %s: %w", abs, err)
	}

	obj, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded tsconfig", "path", abs, "keys", obj.Len())

	return obj, nil
}

// Marshal 输出两空格缩进的 JSON 并以换行结尾。
func Marshal(obj *Object) ([]byte, error) {
	raw, err := obj.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// CompilerOptions 返回 compilerOptions 对象，缺失或类型不符时为 nil。
func CompilerOptions(cfg *Object) *Object {
	return cfg.Object("compilerOptions")
}

// position 把字节偏移转换为 1 起始的行列号。
func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}

	return line, col
}
