// Package explain 把 tsconfig 中的配置项映射为可读说明。
package explain

import (
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/optiondb"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
)

// UnknownDescription 是说明表中不存在的编译选项的描述。
const UnknownDescription = "Unknown option (not in database)"

// Entry 是单个配置项的说明。
type Entry struct {
	Option      string `json:"option" yaml:"option"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Known       bool   `json:"known" yaml:"known"`
}

// Explain 按文件顺序解释配置。
//
// 根级字段只输出说明表中存在的项；compilerOptions 下的每一项都会输出，
// 未知项带 [UnknownDescription]。
func Explain(cfg *tsconfig.Object, db *optiondb.DB) []Entry {
	var entries []Entry

	for _, key := range cfg.Keys() {
		if key == "compilerOptions" {
			continue
		}
		opt, ok := db.TopLevel(key)
		if !ok {
			continue
		}
		v, _ := cfg.Get(key)
		entries = append(entries, Entry{
			Option:      key,
			Value:       tsconfig.FormatValue(v),
			Description: opt.Description,
			Type:        opt.Type,
			Known:       true,
		})
	}

	opts := tsconfig.CompilerOptions(cfg)
	for _, key := range opts.Keys() {
		v, _ := opts.Get(key)
		entry := Entry{
			Option: optiondb.CompilerPrefix + key,
			Value:  tsconfig.FormatValue(v),
		}
		if opt, ok := db.Compiler(key); ok {
			entry.Description = opt.Description
			entry.Type = opt.Type
			entry.Known = true
		} else {
			entry.Description = UnknownDescription
		}
		entries = append(entries, entry)
	}

	return entries
}

// Unknown 返回 entries 中未知选项的数量。
func Unknown(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if !e.Known {
			n++
		}
	}

	return n
}
