/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package tmpl

import (
	"fmt"
	"strings"
)

// Case 是变量的大小写转换前缀。
type Case int

const (
	CaseNone  Case = iota
	CaseUpper      // {+name}
	CaseLower      // {-name}
)

// VarSpec 由 Variable 片段解析得到。
//
//	{+source:1-3} -> Case=CaseUpper Base="source" Modifier="1-3"
//	{image:width} -> Base="image" Modifier="width"
//	{n:start=1,width=3}
type VarSpec struct {
	Raw         string // 原始 {...} 文本
	Case        Case
	Base        string // 去除大小写前缀，截止到第一个未转义 ":" 之前
	Modifier    string // 第一个未转义 ":" 之后的全部内容
	HasModifier bool
}

// ParseVarSpec 解析 Tokenize 产出的变量文本。
func ParseVarSpec(raw string) (VarSpec, error) {
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		return VarSpec{}, fmt.Errorf("%w: %q 不是变量", ErrInvalidTemplate, raw)
	}
	spec := VarSpec{Raw: raw}
	content := raw[1 : len(raw)-1]
	switch {
	case strings.HasPrefix(content, "+"):
		spec.Case = CaseUpper
		content = content[1:]
	case strings.HasPrefix(content, "-"):
		spec.Case = CaseLower
		content = content[1:]
	}

	if i := firstUnescapedColon(content); i >= 0 {
		spec.Base = content[:i]
		spec.Modifier = content[i+1:]
		spec.HasModifier = true
	} else {
		spec.Base = content
	}
	if spec.Base == "" {
		return VarSpec{}, fmt.Errorf("%w: %q 缺少变量名", ErrInvalidTemplate, raw)
	}
	return spec, nil
}

func firstUnescapedColon(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}
