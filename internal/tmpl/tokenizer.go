/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package tmpl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTemplate 表示目标模板括号不匹配、变量无法解析或元数据键不受支持。
var ErrInvalidTemplate = errors.New("invalid template")

// Kind 区分模板片段类型。
type Kind int

const (
	Literal Kind = iota
	Variable
)

func (k Kind) String() string {
	if k == Variable {
		return "variable"
	}
	return "literal"
}

// Token 是目标模板中的一个片段。
// Literal 的 Text 为已去除转义的字面文本；Variable 的 Text 为包含花括号的原始 {...} 文本。
type Token struct {
	Kind Kind
	Text string
}

// Tokenize 从左到右扫描目标模板，拆分为字面片段与 {...} 变量片段。
//
//	"img_{num}{+suffix}" -> [Literal "img_", Variable "{num}", Variable "{+suffix}"]
//
// 未被 "\" 转义的 "{" 开启变量，"}" 关闭变量；不允许嵌套。
// 字面片段中的 "\{" 与 "\}" 输出为 "{" 与 "}"。
func Tokenize(target string) ([]Token, error) {
	var (
		tokens []Token
		lit    strings.Builder
		open   = -1 // 当前变量起始 "{" 的下标，-1 表示不在变量内
	)
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(target); i++ {
		c := target[i]
		escaped := i > 0 && target[i-1] == '\\'
		switch {
		case c == '{' && !escaped:
			if open >= 0 {
				return nil, fmt.Errorf("%w: %q: unexpected '{' at %d", ErrInvalidTemplate, target, i)
			}
			flush()
			open = i
		case c == '}' && !escaped:
			if open < 0 {
				return nil, fmt.Errorf("%w: %q: unexpected '}' at %d", ErrInvalidTemplate, target, i)
			}
			tokens = append(tokens, Token{Kind: Variable, Text: target[open : i+1]})
			open = -1
		case open >= 0:
			// 变量内部保持原样，关闭时整体切片
		case c == '\\' && i+1 < len(target) && (target[i+1] == '{' || target[i+1] == '}'):
			// 转义标记本身不输出
		default:
			lit.WriteByte(c)
		}
	}
	if open >= 0 {
		return nil, fmt.Errorf("%w: %q: unclosed '{' at %d", ErrInvalidTemplate, target, open)
	}
	flush()
	return tokens, nil
}
