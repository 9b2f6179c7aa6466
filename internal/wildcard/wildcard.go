/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package wildcard

import (
	"fmt"

	"renamer/internal/tmpl"
	"renamer/pkg/pathx"
)

// 内置通配符名称
const (
	Source = "source" // 完整文件名
	Prefix = "prefix" // 最后一个 "." 之前的部分
	Suffix = "suffix" // 最后一个 "." 之后的部分
	Number = "n"      // 序号，见 SequenceSpec
	Rand   = "rand"   // 随机数字
)

// IsWildcard 判断变量名是否为内置通配符。
func IsWildcard(base string) bool {
	switch base {
	case Source, Prefix, Suffix, Number, Rand:
		return true
	}
	return false
}

// Sliceable 判断通配符是否接受 {p:l} {p:s:l} {p:s-e} 截取修饰符。
func Sliceable(base string) bool {
	return base == Source || base == Prefix || base == Suffix
}

// ToTarget 将单个通配符变量展开为与 names 等长的值列表（未做大小写与截取转换）。
func ToTarget(names []string, token string) ([]string, error) {
	spec, err := tmpl.ParseVarSpec(token)
	if err != nil {
		return nil, err
	}
	return Expand(names, spec)
}

// Expand 与 ToTarget 相同，但接收已解析的 VarSpec。
func Expand(names []string, spec tmpl.VarSpec) ([]string, error) {
	switch spec.Base {
	case Source:
		out := make([]string, len(names))
		copy(out, names)
		return out, nil
	case Prefix, Suffix:
		out := make([]string, len(names))
		for i, name := range names {
			prefix, suffix := pathx.SplitName(name)
			if spec.Base == Prefix {
				out[i] = prefix
			} else {
				out[i] = suffix
			}
		}
		return out, nil
	case Number:
		seq := DefaultSequenceSpec()
		if spec.HasModifier {
			var err error
			if seq, err = ParseSequenceSpec(spec.Modifier); err != nil {
				return nil, fmt.Errorf("%s: %w", spec.Raw, err)
			}
		}
		return Sequence(len(names), seq)
	case Rand:
		length := DefaultRandomLength
		if spec.HasModifier {
			length = ParseRandomLength(spec.Modifier)
		}
		return Random(len(names), length), nil
	}
	return nil, fmt.Errorf("%w: 未知通配符 %s", tmpl.ErrInvalidTemplate, spec.Raw)
}
