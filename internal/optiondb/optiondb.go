// Package optiondb 提供 tsconfig 选项说明表。
//
// 内置表以 YAML 形式嵌入二进制（options.yaml），可通过 [Load] 叠加
// 团队自定义的 YAML/JSON 表，后加载的条目按字段覆盖先前的条目。
package optiondb

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/lwmacct/260120-go-tsconfig-helper/pkg/cfgm"
)

//go:embed options.yaml
var builtin []byte

// CompilerPrefix 是编译选项在展平后的 key 前缀。
const CompilerPrefix = "compilerOptions."

// ErrUnknownOption 表示说明表中不存在该选项。
var ErrUnknownOption = errors.New("unknown option")

// Option 描述单个配置项。
type Option struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Common      []string `json:"common,omitempty"`
	Default     any      `json:"default,omitempty"`
	Recommended bool     `json:"recommended,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// DB 是选项说明表。
type DB struct {
	top      map[string]Option
	compiler map[string]Option
}

type tableFile struct {
	Top             map[string]Option `json:"top"`
	CompilerOptions map[string]Option `json:"compilerOptions"`
}

// Load 读取内置表并依次叠加 extra 指定的文件。
func Load(extra ...string) (*DB, error) {
	merged, err := cfgm.ParseMap("options.yaml", builtin)
	if err != nil {
		return nil, fmt.Errorf("builtin option table: %w", err)
	}

	for _, path := range extra {
		if path == "" {
			continue
		}
		content, err := os.ReadFile(path) //nolint:gosec // path comes from settings
		if err != nil {
			return nil, fmt.Errorf("read option table %s: %w", path, err)
		}
		table, err := cfgm.ParseMap(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse option table %s: %w", path, err)
		}
		cfgm.MergeMaps(merged, table)
		slog.Debug("Merged option table", "path", path)
	}

	var file tableFile
	if err := cfgm.Decode(merged, &file); err != nil {
		return nil, fmt.Errorf("decode option table: %w", err)
	}

	db := &DB{top: file.Top, compiler: file.CompilerOptions}
	if db.top == nil {
		db.top = map[string]Option{}
	}
	if db.compiler == nil {
		db.compiler = map[string]Option{}
	}
	for name, opt := range db.top {
		opt.Name = name
		db.top[name] = opt
	}
	for name, opt := range db.compiler {
		opt.Name = name
		db.compiler[name] = opt
	}

	return db, nil
}

// MustLoad 加载内置表，失败时 panic。内置表在测试中校验，不应失败。
func MustLoad() *DB {
	db, err := Load()
	if err != nil {
		panic(fmt.Sprintf("optiondb: %v", err))
	}

	return db
}

// TopLevel 查找根级字段（如 include）。
func (db *DB) TopLevel(key string) (Option, bool) {
	opt, ok := db.top[key]

	return opt, ok
}

// Compiler 查找编译选项（如 strict）。
func (db *DB) Compiler(key string) (Option, bool) {
	opt, ok := db.compiler[key]

	return opt, ok
}

// Lookup 按名称查找，支持 "compilerOptions." 前缀；
// 精确匹配失败时再做大小写无关匹配。
func (db *DB) Lookup(name string) (Option, bool) {
	if rest, ok := strings.CutPrefix(name, CompilerPrefix); ok {
		return findFold(db.compiler, rest)
	}
	if opt, ok := findFold(db.compiler, name); ok {
		return opt, true
	}

	return findFold(db.top, name)
}

// TopLevels 返回按名称排序的根级字段。
func (db *DB) TopLevels() []Option {
	return sortedOptions(db.top)
}

// Compilers 返回按名称排序的编译选项。
func (db *DB) Compilers() []Option {
	return sortedOptions(db.compiler)
}

// Categories 返回编译选项的分类，按字典序排列。
func (db *DB) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, opt := range db.compiler {
		if opt.Category != "" && !seen[opt.Category] {
			seen[opt.Category] = true
			out = append(out, opt.Category)
		}
	}
	sort.Strings(out)

	return out
}

func findFold(table map[string]Option, name string) (Option, bool) {
	if opt, ok := table[name]; ok {
		return opt, true
	}
	for key, opt := range table {
		if strings.EqualFold(key, name) {
			return opt, true
		}
	}

	return Option{}, false
}

func sortedOptions(table map[string]Option) []Option {
	out := make([]Option, 0, len(table))
	for _, opt := range table {
		out = append(out, opt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
