package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
	"github.com/lwmacct/260120-go-tsconfig-helper/pkg/templexp"
)

// Rule 是一条独立的检查规则。
type Rule struct {
	ID          string
	Description string
	Check       func(cfg *tsconfig.Object) []Issue
}

// strictFamily 是 "strict": true 已经隐含的开关。
var strictFamily = []string{
	"alwaysStrict",
	"strictNullChecks",
	"strictBindCallApply",
	"strictFunctionTypes",
	"strictPropertyInitialization",
	"noImplicitAny",
	"noImplicitThis",
}

// Rules 返回全部规则，顺序即输出顺序。
func Rules() []Rule {
	return []Rule{
		{ID: "strict-redundant", Description: "flags implied by strict are set explicitly", Check: compilerRule(checkStrictRedundant)},
		{ID: "module-resolution-node", Description: "node16/nodenext modules need matching moduleResolution", Check: compilerRule(checkModuleResolutionNode)},
		{ID: "module-resolution-esnext", Description: "ESNext modules without explicit moduleResolution", Check: compilerRule(checkModuleResolutionESNext)},
		{ID: "target-outdated", Description: "ES3/ES5 targets", Check: compilerRule(checkTargetOutdated)},
		{ID: "synthetic-default-imports", Description: "allowSyntheticDefaultImports without esModuleInterop", Check: compilerRule(checkSyntheticDefaultImports)},
		{ID: "isolated-modules", Description: "isolatedModules not set", Check: compilerRule(checkIsolatedModules)},
		{ID: "skip-lib-check", Description: "skipLibCheck not enabled", Check: compilerRule(checkSkipLibCheck)},
		{ID: "declaration-map", Description: "declaration without declarationMap", Check: compilerRule(checkDeclarationMap)},
		{ID: "source-map-conflict", Description: "sourceMap together with inlineSourceMap", Check: compilerRule(checkSourceMapConflict)},
		{ID: "paths-base-url", Description: "paths without baseUrl", Check: compilerRule(checkPathsBaseURL)},
		{ID: "include-missing", Description: "neither include nor files", Check: checkIncludeMissing},
		{ID: "exclude-missing", Description: "include without exclude", Check: checkExcludeMissing},
		{ID: "template-variable", Description: "unsupported ${...} placeholders", Check: checkTemplateVariables},
	}
}

// RuleIDs 返回全部规则 ID。
func RuleIDs() []string {
	rules := Rules()
	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = r.ID
	}

	return ids
}

// Option 调整一次校验的行为。
type Option func(*options)

type options struct {
	disabled map[string]bool
}

// WithDisabled 跳过指定 ID 的规则。
func WithDisabled(ids ...string) Option {
	return func(o *options) {
		for _, id := range ids {
			o.disabled[strings.TrimSpace(id)] = true
		}
	}
}

// Validate 依次运行所有未被禁用的规则。
func Validate(cfg *tsconfig.Object, opts ...Option) Report {
	o := &options{disabled: map[string]bool{}}
	for _, opt := range opts {
		opt(o)
	}

	report := Report{Issues: []Issue{}, Valid: true}
	for _, rule := range Rules() {
		if o.disabled[rule.ID] {
			continue
		}
		for _, issue := range rule.Check(cfg) {
			issue.Rule = rule.ID
			if issue.Severity == SeverityError {
				report.Valid = false
			}
			report.Issues = append(report.Issues, issue)
		}
	}

	return report
}

// CheckRuleIDs 返回 ids 中不存在的规则 ID。
func CheckRuleIDs(ids []string) []string {
	known := map[string]bool{}
	for _, id := range RuleIDs() {
		known[id] = true
	}
	var unknown []string
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" && !known[id] {
			unknown = append(unknown, id)
		}
	}

	return unknown
}

// compilerRule 只在 compilerOptions 为对象时运行 check。
func compilerRule(check func(opts *tsconfig.Object) []Issue) func(*tsconfig.Object) []Issue {
	return func(cfg *tsconfig.Object) []Issue {
		opts := tsconfig.CompilerOptions(cfg)
		if opts == nil {
			return nil
		}

		return check(opts)
	}
}

func checkStrictRedundant(opts *tsconfig.Object) []Issue {
	if !isTrue(opts, "strict") {
		return nil
	}

	var issues []Issue
	for _, flag := range strictFamily {
		if !opts.Has(flag) {
			continue
		}
		issues = append(issues, Issue{
			Severity:   SeverityInfo,
			Option:     "compilerOptions." + flag,
			Message:    `Redundant when "strict": true is enabled`,
			Suggestion: fmt.Sprintf(`Remove "%s" from compilerOptions`, flag),
		})
	}

	return issues
}

func checkModuleResolutionNode(opts *tsconfig.Object) []Issue {
	if !truthy(opts, "module") {
		return nil
	}
	module := lowerString(opts, "module")
	if module != "node16" && module != "nodenext" {
		return nil
	}
	if !truthy(opts, "moduleResolution") {
		return nil
	}
	resolution := lowerString(opts, "moduleResolution")
	if resolution == "node16" || resolution == "nodenext" {
		return nil
	}

	return []Issue{{
		Severity:   SeverityWarning,
		Option:     "compilerOptions.moduleResolution",
		Message:    fmt.Sprintf(`moduleResolution should be "node16" or "nodenext" when module is "%s"`, rawString(opts, "module")),
		Suggestion: `Set "moduleResolution": "node16"`,
	}}
}

func checkModuleResolutionESNext(opts *tsconfig.Object) []Issue {
	if !truthy(opts, "module") || lowerString(opts, "module") != "esnext" || truthy(opts, "moduleResolution") {
		return nil
	}

	return []Issue{{
		Severity:   SeverityInfo,
		Option:     "compilerOptions.moduleResolution",
		Message:    "Consider explicitly setting moduleResolution when using ESNext modules",
		Suggestion: `Add "moduleResolution": "bundler" or "node"`,
	}}
}

func checkTargetOutdated(opts *tsconfig.Object) []Issue {
	if !truthy(opts, "target") {
		return nil
	}

	var released string
	switch lowerString(opts, "target") {
	case "es3":
		released = "1999"
	case "es5":
		released = "2009"
	default:
		return nil
	}

	return []Issue{{
		Severity:   SeverityWarning,
		Option:     "compilerOptions.target",
		Message:    fmt.Sprintf(`Target "%s" is outdated (released %s)`, rawString(opts, "target"), released),
		Suggestion: `Consider using at least "ES2015" or higher`,
	}}
}

func checkSyntheticDefaultImports(opts *tsconfig.Object) []Issue {
	if !isFalse(opts, "esModuleInterop") || !isTrue(opts, "allowSyntheticDefaultImports") {
		return nil
	}

	return []Issue{{
		Severity:   SeverityWarning,
		Option:     "compilerOptions.allowSyntheticDefaultImports",
		Message:    "allowSyntheticDefaultImports has no effect when esModuleInterop is false",
		Suggestion: `Set "esModuleInterop": true or remove "allowSyntheticDefaultImports"`,
	}}
}

func checkIsolatedModules(opts *tsconfig.Object) []Issue {
	if opts.Has("isolatedModules") || isTrue(opts, "transpileOnly") {
		return nil
	}

	return []Issue{{
		Severity:   SeverityInfo,
		Option:     "compilerOptions.isolatedModules",
		Message:    "Consider enabling isolatedModules for better compatibility with build tools",
		Suggestion: `Add "isolatedModules": true`,
	}}
}

func checkSkipLibCheck(opts *tsconfig.Object) []Issue {
	if isTrue(opts, "skipLibCheck") {
		return nil
	}

	return []Issue{{
		Severity:   SeverityInfo,
		Option:     "compilerOptions.skipLibCheck",
		Message:    "Enabling skipLibCheck can significantly improve compilation speed",
		Suggestion: `Add "skipLibCheck": true unless you need to check library types`,
	}}
}

func checkDeclarationMap(opts *tsconfig.Object) []Issue {
	if !isTrue(opts, "declaration") || isTrue(opts, "declarationMap") {
		return nil
	}

	return []Issue{{
		Severity:   SeverityInfo,
		Option:     "compilerOptions.declarationMap",
		Message:    "Consider enabling declarationMap for better IDE navigation",
		Suggestion: `Add "declarationMap": true`,
	}}
}

func checkSourceMapConflict(opts *tsconfig.Object) []Issue {
	if !isTrue(opts, "sourceMap") || !isTrue(opts, "inlineSourceMap") {
		return nil
	}

	return []Issue{{
		Severity:   SeverityError,
		Option:     "compilerOptions",
		Message:    `Cannot use both "sourceMap" and "inlineSourceMap"`,
		Suggestion: "Remove one of these options",
	}}
}

func checkPathsBaseURL(opts *tsconfig.Object) []Issue {
	if !truthy(opts, "paths") || truthy(opts, "baseUrl") {
		return nil
	}

	return []Issue{{
		Severity:   SeverityError,
		Option:     "compilerOptions.paths",
		Message:    `"paths" requires "baseUrl" to be set`,
		Suggestion: `Add "baseUrl": "./"`,
	}}
}

func checkIncludeMissing(cfg *tsconfig.Object) []Issue {
	if truthy(cfg, "include") || truthy(cfg, "files") {
		return nil
	}

	return []Issue{{
		Severity:   SeverityWarning,
		Message:    `No "include" or "files" specified. TypeScript will include all .ts/.tsx files`,
		Suggestion: `Add "include": ["src/**/*"] to be explicit`,
	}}
}

func checkExcludeMissing(cfg *tsconfig.Object) []Issue {
	if !truthy(cfg, "include") || truthy(cfg, "exclude") {
		return nil
	}

	return []Issue{{
		Severity:   SeverityInfo,
		Message:    `Consider adding "exclude" to skip unnecessary files`,
		Suggestion: `Add "exclude": ["node_modules", "dist"]`,
	}}
}

// configDirVar 是 TypeScript 唯一会替换的模板变量。
const configDirVar = "configDir"

func checkTemplateVariables(cfg *tsconfig.Object) []Issue {
	flat := tsconfig.Flatten(cfg)

	var issues []Issue
	for _, key := range flat.Keys() {
		v, _ := flat.Get(key)
		for _, s := range stringsIn(v) {
			for _, p := range templexp.Placeholders(s) {
				if p.Name == configDirVar && p.Op == "" {
					continue
				}
				issues = append(issues, Issue{
					Severity:   SeverityWarning,
					Option:     key,
					Message:    fmt.Sprintf(`Unsupported template variable "%s"; TypeScript only substitutes "${configDir}"`, p.Raw),
					Suggestion: `Use a literal path or "${configDir}"`,
				})
			}
		}
	}

	return issues
}

// stringsIn 收集 v 中的字符串，包括数组元素与数组中的对象。
func stringsIn(v any) []string {
	switch typed := v.(type) {
	case string:
		return []string{typed}
	case []any:
		var out []string
		for _, item := range typed {
			out = append(out, stringsIn(item)...)
		}
		return out
	case *tsconfig.Object:
		var out []string
		for _, k := range typed.Keys() {
			item, _ := typed.Get(k)
			out = append(out, stringsIn(item)...)
		}
		return out
	}

	return nil
}

func isTrue(obj *tsconfig.Object, key string) bool {
	v, _ := obj.Get(key)
	b, ok := v.(bool)

	return ok && b
}

func isFalse(obj *tsconfig.Object, key string) bool {
	v, _ := obj.Get(key)
	b, ok := v.(bool)

	return ok && !b
}

// truthy 按 JavaScript 的真值规则判断 key 的值。
func truthy(obj *tsconfig.Object, key string) bool {
	v, ok := obj.Get(key)
	if !ok {
		return false
	}

	switch typed := v.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case json.Number:
		f, err := typed.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

func rawString(obj *tsconfig.Object, key string) string {
	v, _ := obj.Get(key)
	if s, ok := v.(string); ok {
		return s
	}

	return tsconfig.FormatValue(v)
}

func lowerString(obj *tsconfig.Object, key string) string {
	return strings.ToLower(rawString(obj, key))
}
