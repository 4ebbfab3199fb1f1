// Package render 把各命令的结果输出为文本、JSON 或 YAML。
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	yamlv3 "go.yaml.in/yaml/v3"
)

// Format 是输出格式。
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat 解析输出格式，空字符串视为 text。
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// ColorEnabled 判断是否应输出颜色：f 是终端、未设置 NO_COLOR 且未显式关闭。
func ColorEnabled(f *os.File, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" || f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const ruleWidth = 60

var (
	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleOption  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	styleAdded   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleRemoved = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// Printer 按指定格式写出结果。
type Printer struct {
	w      io.Writer
	format Format
	color  bool
}

// New 创建 Printer；color 只影响 text 格式。
func New(w io.Writer, format Format, color bool) *Printer {
	if format == "" {
		format = FormatText
	}

	return &Printer{w: w, format: format, color: color}
}

// Structured 判断当前格式是否为 JSON/YAML。
func (p *Printer) Structured() bool {
	return p.format == FormatJSON || p.format == FormatYAML
}

// Data 以 JSON（两空格缩进）或 YAML 输出 v。
func (p *Printer) Data(v any) error {
	switch p.format {
	case FormatYAML:
		enc := yamlv3.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}

	return style.Render(s)
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println(args ...any) {
	_, _ = fmt.Fprintln(p.w, args...)
}

func (p *Printer) rule() {
	p.println(p.paint(styleMuted, strings.Repeat("═", ruleWidth)))
}

// indent 为多行文本的后续行添加缩进。
func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
