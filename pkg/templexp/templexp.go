package templexp

import (
	"fmt"
	"os"
	"strings"
)

// LookupFunc 按名称查找变量值，第二个返回值表示变量是否已设置。
type LookupFunc func(name string) (string, bool)

// Placeholder 描述文本中的一个 ${...} 占位符。
type Placeholder struct {
	Name   string // 变量名
	Op     string // 运算符，如 ":-"、"?"，无运算符时为空
	Word   string // 运算符之后的原始文本
	Offset int    // "$" 在原文中的字节偏移
	Raw    string // 包含 ${ } 的完整文本
}

// expander 保存一次展开过程的状态。
type expander struct {
	lookup   LookupFunc
	assigned map[string]string
}

func (e *expander) get(name string) (string, bool) {
	if v, ok := e.assigned[name]; ok {
		return v, true
	}
	if e.lookup == nil {
		return "", false
	}

	return e.lookup(name)
}

// ExpandTemplate 使用当前进程环境变量展开 text。
//
// 仅在必填校验（${VAR:?msg}）失败时返回 error。
func ExpandTemplate(text string) (string, error) {
	return Expand(text, os.LookupEnv)
}

// Expand 使用 lookup 展开 text 中的占位符。
//
// lookup 为 nil 时所有变量视为未设置。
func Expand(text string, lookup LookupFunc) (string, error) {
	e := &expander{lookup: lookup, assigned: map[string]string{}}

	return e.expand(text)
}

// Placeholders 返回 text 中所有可识别的顶层占位符，按出现顺序排列。
//
// 嵌套在默认值中的占位符不会单独返回；"$$" 视为字面量跳过。
func Placeholders(text string) []Placeholder {
	var out []Placeholder
	for i := 0; i < len(text); i++ {
		if text[i] != '$' || i+1 >= len(text) {
			continue
		}
		if text[i+1] == '$' {
			i++
			continue
		}
		if text[i+1] != '{' {
			continue
		}

		end := closingBrace(text, i+2)
		if end < 0 {
			continue
		}
		name, op, word, ok := splitExpr(text[i+2 : end])
		if ok {
			out = append(out, Placeholder{
				Name:   name,
				Op:     op,
				Word:   word,
				Offset: i,
				Raw:    text[i : end+1],
			})
		}
		i = end
	}

	return out
}

func (e *expander) expand(text string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text))

	i := 0
	for i < len(text) {
		ch := text[i]
		if ch != '$' || i+1 >= len(text) {
			sb.WriteByte(ch)
			i++
			continue
		}

		switch text[i+1] {
		case '$':
			sb.WriteByte('$')
			i += 2
			continue
		case '{':
		default:
			sb.WriteByte(ch)
			i++
			continue
		}

		end := closingBrace(text, i+2)
		if end < 0 {
			sb.WriteByte(ch)
			i++
			continue
		}

		val, ok, err := e.eval(text[i+2 : end])
		if err != nil {
			return "", err
		}
		if ok {
			sb.WriteString(val)
		} else {
			sb.WriteString(text[i : end+1])
		}
		i = end + 1
	}

	return sb.String(), nil
}

// eval 计算单个表达式；ok 为 false 表示无法识别，调用方保留原文。
func (e *expander) eval(expr string) (string, bool, error) {
	name, op, word, ok := splitExpr(expr)
	if !ok {
		return "", false, nil
	}

	val, set := e.get(name)
	// 带冒号的运算符把空值视为未设置
	present := set
	if strings.HasPrefix(op, ":") {
		present = set && val != ""
	}

	switch strings.TrimPrefix(op, ":") {
	case "":
		return val, true, nil
	case "-":
		if present {
			return val, true, nil
		}
		w, err := e.expand(word)
		return w, err == nil, err
	case "+":
		if !present {
			return "", true, nil
		}
		w, err := e.expand(word)
		return w, err == nil, err
	case "?":
		if present {
			return val, true, nil
		}
		if word == "" {
			return "", false, fmt.Errorf("templexp: %s: parameter null or not set", name)
		}
		return "", false, fmt.Errorf("templexp: %s: %s", name, word)
	case "=":
		if present {
			return val, true, nil
		}
		w, err := e.expand(word)
		if err != nil {
			return "", false, err
		}
		e.assigned[name] = w
		return w, true, nil
	}

	return "", false, nil
}

func isNameStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

// splitExpr 把 "NAME:-word" 拆为 name、op、word。
func splitExpr(expr string) (name, op, word string, ok bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return "", "", "", false
	}

	n := 1
	for n < len(expr) && isNameChar(expr[n]) {
		n++
	}
	name, rest := expr[:n], expr[n:]
	if rest == "" {
		return name, "", "", true
	}

	width := 1
	if rest[0] == ':' {
		width = 2
	}
	if len(rest) < width || !strings.ContainsRune("-+?=", rune(rest[width-1])) {
		return "", "", "", false
	}

	return name, rest[:width], rest[width:], true
}

// closingBrace 返回与 start 之前的 "${" 匹配的 "}" 下标，未找到返回 -1。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}
