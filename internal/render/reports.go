package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/diff"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/explain"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/optiondb"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/templates"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/validate"
)

// Explain 输出配置说明。
func (p *Printer) Explain(file string, entries []explain.Entry) error {
	if p.Structured() {
		if entries == nil {
			entries = []explain.Entry{}
		}
		return p.Data(entries)
	}

	p.printf("\n📋 %s %s\n\n", p.paint(styleTitle, "TSConfig Explanation:"), file)
	p.rule()
	for _, e := range entries {
		p.printf("\n🔹 %s\n", p.paint(styleOption, e.Option))
		p.printf("   Value: %s\n", indent(e.Value, "   "))
		if e.Known {
			p.printf("   %s\n", e.Description)
		} else {
			p.printf("   %s\n", p.paint(styleWarning, "⚠️  "+e.Description))
		}
		if e.Type != "" {
			p.printf("   %s\n", p.paint(styleMuted, "Type: "+e.Type))
		}
	}
	p.println()
	p.rule()
	p.printf("\n%s\n\n", p.paint(styleSuccess, fmt.Sprintf("✅ Explained %d options", len(entries))))

	return nil
}

// DiffResult 是 diff 命令的结构化输出。
type DiffResult struct {
	FileA   string       `json:"fileA" yaml:"fileA"`
	FileB   string       `json:"fileB" yaml:"fileB"`
	Entries []diff.Entry `json:"entries" yaml:"entries"`
	Summary diff.Summary `json:"summary" yaml:"summary"`
}

// Diff 输出比较结果；hideSame 只影响结构化输出中的条目列表。
func (p *Printer) Diff(fileA, fileB string, entries []diff.Entry, hideSame bool) error {
	summary := diff.Summarize(entries)

	if p.Structured() {
		shown := entries
		if hideSame {
			shown = diff.Filter(entries, diff.Added, diff.Removed, diff.Changed)
		}
		if shown == nil {
			shown = []diff.Entry{}
		}
		return p.Data(DiffResult{FileA: fileA, FileB: fileB, Entries: shown, Summary: summary})
	}

	p.printf("\n🔍 %s %s ↔️  %s\n\n", p.paint(styleTitle, "TSConfig Diff:"), fileA, fileB)
	p.rule()

	if added := diff.Filter(entries, diff.Added); len(added) > 0 {
		p.printf("\n%s\n", p.paint(styleAdded, fmt.Sprintf("➕ Added in %s (%d):", fileB, len(added))))
		for _, e := range added {
			p.printf("   %s: %s\n", e.Option, indent(tsconfig.FormatValue(e.FileB), "   "))
		}
	}
	if removed := diff.Filter(entries, diff.Removed); len(removed) > 0 {
		p.printf("\n%s\n", p.paint(styleRemoved, fmt.Sprintf("➖ Removed from %s (%d):", fileB, len(removed))))
		for _, e := range removed {
			p.printf("   %s: %s\n", e.Option, indent(tsconfig.FormatValue(e.FileA), "   "))
		}
	}
	if changed := diff.Filter(entries, diff.Changed); len(changed) > 0 {
		p.printf("\n%s\n", p.paint(styleWarning, fmt.Sprintf("🔄 Changed (%d):", len(changed))))
		for _, e := range changed {
			p.printf("   %s:\n", e.Option)
			p.printf("      %s: %s\n", fileA, indent(tsconfig.FormatValue(e.FileA), "      "))
			p.printf("      %s: %s\n", fileB, indent(tsconfig.FormatValue(e.FileB), "      "))
		}
	}

	p.println()
	p.rule()
	p.printf("\n📊 Summary: %d added, %d removed, %d changed, %d same\n\n",
		summary.Added, summary.Removed, summary.Changed, summary.Same)

	return nil
}

// Unified 输出统一文本差异。
func (p *Printer) Unified(text string) error {
	if text == "" {
		p.println("No changes.")
		return nil
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = p.paint(styleTitle, strings.TrimSuffix(line, "\n")) + "\n"
		case strings.HasPrefix(line, "+"):
			line = p.paint(styleAdded, strings.TrimSuffix(line, "\n")) + "\n"
		case strings.HasPrefix(line, "-"):
			line = p.paint(styleRemoved, strings.TrimSuffix(line, "\n")) + "\n"
		case strings.HasPrefix(line, "@@"):
			line = p.paint(styleInfo, strings.TrimSuffix(line, "\n")) + "\n"
		}
		p.printf("%s", line)
	}

	return nil
}

// Validate 输出校验报告。
func (p *Printer) Validate(file string, report validate.Report) error {
	if p.Structured() {
		return p.Data(report)
	}

	p.printf("\n🔍 %s %s\n\n", p.paint(styleTitle, "Validating"), file)

	if len(report.Issues) == 0 {
		p.printf("%s\n\n", p.paint(styleSuccess, "✅ No issues found! Your tsconfig looks great."))
		return nil
	}

	sections := []struct {
		sev   validate.Severity
		title string
		style lipgloss.Style
	}{
		{validate.SeverityError, "❌ Errors:", styleError},
		{validate.SeverityWarning, "⚠️  Warnings:", styleWarning},
		{validate.SeverityInfo, "ℹ️  Suggestions:", styleInfo},
	}
	for _, sec := range sections {
		issues := report.BySeverity(sec.sev)
		if len(issues) == 0 {
			continue
		}
		p.printf("%s\n\n", p.paint(sec.style, sec.title))
		for _, issue := range issues {
			where := "[config]"
			if issue.Option != "" {
				where = "[" + issue.Option + "]"
			}
			p.printf("  %s %s\n", p.paint(styleOption, where), issue.Message)
			if issue.Suggestion != "" {
				p.printf("    💡 %s\n", issue.Suggestion)
			}
			p.println()
		}
	}

	errs := report.Count(validate.SeverityError)
	p.printf("\n📊 Summary: %d error(s), %d warning(s), %d suggestion(s)\n\n",
		errs, report.Count(validate.SeverityWarning), report.Count(validate.SeverityInfo))
	if errs > 0 {
		p.printf("%s\n\n", p.paint(styleError, "❌ Validation failed. Please fix the errors above."))
	} else {
		p.printf("%s\n\n", p.paint(styleSuccess, "✅ No critical errors found."))
	}

	return nil
}

// InitResult 是 init 命令的结构化输出。
type InitResult struct {
	Type       string                `json:"type" yaml:"type"`
	Path       string                `json:"path" yaml:"path"`
	Highlights []templates.Highlight `json:"highlights" yaml:"highlights"`
}

// Init 输出模板创建结果。
func (p *Printer) Init(res InitResult) error {
	if p.Structured() {
		return p.Data(res)
	}

	p.printf("%s\n", p.paint(styleSuccess, fmt.Sprintf("✅ Created %s tsconfig.json at: %s", res.Type, res.Path)))
	p.printf("\n📦 Recommended setup for %s projects:\n", res.Type)
	for _, h := range res.Highlights {
		p.printf("   - %s: %s\n", h.Label, h.Value)
	}
	p.printf("\n💡 Run `tsconfig-helper explain` to understand each option!\n\n")

	return nil
}

// OptionList 输出说明表；category 非空时只输出该分类的编译选项。
func (p *Printer) OptionList(db *optiondb.DB, category string) error {
	compilers := db.Compilers()
	if category != "" {
		filtered := []optiondb.Option{}
		for _, opt := range compilers {
			if strings.EqualFold(opt.Category, category) {
				filtered = append(filtered, opt)
			}
		}
		compilers = filtered
	}

	if p.Structured() {
		out := map[string][]optiondb.Option{"compilerOptions": compilers}
		if category == "" {
			out["top"] = db.TopLevels()
		}
		return p.Data(out)
	}

	if category == "" {
		p.printf("\n%s\n", p.paint(styleTitle, "Top-level fields"))
		for _, opt := range db.TopLevels() {
			p.printf("  %s %s\n", p.paint(styleOption, fmt.Sprintf("%-34s", opt.Name)), p.paint(styleMuted, opt.Type))
		}
	}

	byCategory := map[string][]optiondb.Option{}
	for _, opt := range compilers {
		byCategory[opt.Category] = append(byCategory[opt.Category], opt)
	}
	for _, cat := range db.Categories() {
		opts := byCategory[cat]
		if len(opts) == 0 {
			continue
		}
		p.printf("\n%s\n", p.paint(styleTitle, "compilerOptions · "+cat))
		for _, opt := range opts {
			mark := " "
			if opt.Recommended {
				mark = "★"
			}
			p.printf("  %s %s %s\n", mark, p.paint(styleOption, fmt.Sprintf("%-32s", opt.Name)), p.paint(styleMuted, opt.Type))
		}
	}
	p.printf("\n%d compiler options, ★ = recommended\n\n", len(compilers))

	return nil
}

// Option 输出单个选项的详细说明。
func (p *Printer) Option(name string, opt optiondb.Option) error {
	if p.Structured() {
		return p.Data(opt)
	}

	p.printf("\n🔹 %s\n", p.paint(styleOption, name))
	p.printf("   %s\n", opt.Description)
	p.printf("   %s\n", p.paint(styleMuted, "Type: "+opt.Type))
	if opt.Category != "" {
		p.printf("   %s\n", p.paint(styleMuted, "Category: "+opt.Category))
	}
	if opt.Default != nil {
		p.printf("   Default: %v\n", opt.Default)
	}
	if len(opt.Common) > 0 {
		p.printf("   Common values: %s\n", strings.Join(opt.Common, ", "))
	}
	if opt.Recommended {
		p.printf("   %s\n", p.paint(styleSuccess, "★ Recommended"))
	}
	p.println()

	return nil
}

// RuleInfo 是规则列表中的一项。
type RuleInfo struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Disabled    bool   `json:"disabled" yaml:"disabled"`
}

// Rules 输出校验规则列表。
func (p *Printer) Rules(rules []RuleInfo) error {
	if p.Structured() {
		return p.Data(rules)
	}

	p.printf("\n%s\n", p.paint(styleTitle, "Validation rules"))
	for _, r := range rules {
		id := p.paint(styleOption, fmt.Sprintf("%-26s", r.ID))
		if r.Disabled {
			id = p.paint(styleMuted, fmt.Sprintf("%-26s", r.ID))
		}
		line := fmt.Sprintf("  %s %s", id, r.Description)
		if r.Disabled {
			line += p.paint(styleMuted, " (disabled)")
		}
		p.println(line)
	}
	p.println()

	return nil
}
