/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package tmpl

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ApplyCase 对每个值执行大小写转换，返回新切片。
func ApplyCase(values []string, c Case) []string {
	var caser cases.Caser
	switch c {
	case CaseUpper:
		caser = cases.Upper(language.Und)
	case CaseLower:
		caser = cases.Lower(language.Und)
	default:
		return values
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = caser.String(v)
	}
	return out
}

// SliceKind 截取方式。
type SliceKind int

const (
	SliceLength      SliceKind = iota // {p:l}
	SliceStartLength                  // {p:s:l}
	SliceRange                        // {p:s-e}
)

// Slice 按字符（rune）截取，不按字节。
type Slice struct {
	Kind   SliceKind
	Start  int
	Length int
	End    int
}

// ParseSlice 解析截取修饰符。任何无法解析的数字按 0 处理，不报错。
func ParseSlice(modifier string) Slice {
	switch {
	case strings.Contains(modifier, ":"):
		parts := strings.Split(modifier, ":")
		return Slice{Kind: SliceStartLength, Start: lenientInt(parts, 0), Length: lenientInt(parts, 1)}
	case strings.Contains(modifier, "-"):
		parts := strings.Split(modifier, "-")
		return Slice{Kind: SliceRange, Start: lenientInt(parts, 0), End: lenientInt(parts, 1)}
	default:
		return Slice{Kind: SliceLength, Length: lenientInt([]string{modifier}, 0)}
	}
}

func lenientInt(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Apply 对单个字符串执行截取。
func (s Slice) Apply(v string) string {
	switch s.Kind {
	case SliceStartLength:
		return takeRunes(v, s.Start, s.Length)
	case SliceRange:
		return takeRunes(v, s.Start, s.End-s.Start)
	default:
		return takeRunes(v, 0, s.Length)
	}
}

// ApplySlice 对每个值执行截取，返回新切片。
func ApplySlice(values []string, s Slice) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = s.Apply(v)
	}
	return out
}

// takeRunes 跳过 skip 个字符后保留 n 个字符，n <= 0 返回空串。
func takeRunes(s string, skip, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	idx := 0
	for _, r := range s {
		if idx >= skip+n {
			break
		}
		if idx >= skip {
			b.WriteRune(r)
		}
		idx++
	}
	return b.String()
}
