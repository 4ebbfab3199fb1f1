// Package templexp 处理字符串中的 ${...} 占位符。
//
// 两类用法：
//
//  1. 展开 - [ExpandTemplate] 使用环境变量，[Expand] 使用自定义 [LookupFunc]
//  2. 扫描 - [Placeholders] 只定位占位符，不做替换
//
// # 语义说明
//
//   - 仅识别 ${...}（不解析 $VAR）
//   - 支持 ${VAR} / ${VAR:-default} / ${VAR:+alt} / ${VAR:?msg} / ${VAR:=default}
//     以及不带冒号的变体
//   - 支持嵌套与 "$$" 字面量
//   - ":=" 赋值只写入本次展开的覆盖表，不修改进程环境
//   - 无法识别的表达式保持原样
//
// # 快速开始
//
//	out, err := templexp.ExpandTemplate(`format: "${TSCH_FORMAT:-text}"`)
//
// tsconfig 自身只支持 ${configDir}，可以用 [Placeholders] 找出其它变量：
//
//	for _, p := range templexp.Placeholders(`"${configDir}/src/${NAME}"`) {
//	    fmt.Println(p.Name) // configDir, NAME
//	}
package templexp
