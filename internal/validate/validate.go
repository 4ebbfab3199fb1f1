// Package validate 检查 tsconfig 中相互矛盾或欠佳的设置。
//
// 每条规则独立运行，只读取配置本身，不依赖其它规则的结果。
package validate

import (
	"fmt"
	"slices"
	"strings"
)

// Severity 是问题的严重程度。
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// rank 越大越严重。
func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}

	return 0
}

// AtLeast 判断 s 是否不低于 min。
func (s Severity) AtLeast(minimum Severity) bool {
	return s.rank() >= minimum.rank()
}

// ParseSeverity 解析 error / warning / info，大小写无关。
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if sev.rank() == 0 {
		return "", fmt.Errorf("unknown severity %q (want error, warning or info)", s)
	}

	return sev, nil
}

// Issue 是一条校验结果。
type Issue struct {
	Rule       string   `json:"rule" yaml:"rule"`
	Severity   Severity `json:"severity" yaml:"severity"`
	Option     string   `json:"option,omitempty" yaml:"option,omitempty"`
	Message    string   `json:"message" yaml:"message"`
	Suggestion string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Report 汇总校验结果；Valid 在没有 error 级问题时为 true。
type Report struct {
	Issues []Issue `json:"issues" yaml:"issues"`
	Valid  bool    `json:"valid" yaml:"valid"`
}

// Count 返回指定严重程度的问题数量。
func (r Report) Count(sev Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			n++
		}
	}

	return n
}

// Failed 判断是否存在不低于 threshold 的问题。
func (r Report) Failed(threshold Severity) bool {
	return slices.ContainsFunc(r.Issues, func(i Issue) bool { return i.Severity.AtLeast(threshold) })
}

// BySeverity 返回指定严重程度的问题，保持原顺序。
func (r Report) BySeverity(sev Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}

	return out
}
