/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package wildcard

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidSequenceSpec 表示 {n:...} 参数非法（step=0、进制越界、非数字）。
var ErrInvalidSequenceSpec = errors.New("invalid sequence spec")

// SequenceSpec 是 {n:...} 序号的参数。
type SequenceSpec struct {
	Start   uint64
	Width   int
	Step    uint64
	Radix   int
	Reverse bool
}

// DefaultSequenceSpec 对应不带参数的 {n}：0, 1, 2...
func DefaultSequenceSpec() SequenceSpec {
	return SequenceSpec{Step: 1, Radix: 10}
}

// ParseSequenceSpec 解析 "start=1,width=3,step=2,radix=16,reverse"。
// 参数以逗号或空白分隔，顺序任意；未知键忽略；重复的键以最后一次为准。
func ParseSequenceSpec(params string) (SequenceSpec, error) {
	spec := DefaultSequenceSpec()
	fields := strings.FieldsFunc(params, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	for _, field := range fields {
		key, value, hasValue := strings.Cut(field, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "reverse" {
			spec.Reverse = true
			if hasValue {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return SequenceSpec{}, fmt.Errorf("%w: reverse=%q", ErrInvalidSequenceSpec, value)
				}
				spec.Reverse = b
			}
			continue
		}
		switch key {
		case "start", "width", "step", "radix":
		default:
			continue
		}
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return SequenceSpec{}, fmt.Errorf("%w: %s=%q 不是非负整数", ErrInvalidSequenceSpec, key, value)
		}
		switch key {
		case "start":
			spec.Start = n
		case "width":
			spec.Width = int(min(n, 255))
		case "step":
			spec.Step = n
		case "radix":
			spec.Radix = int(min(n, 1<<16))
		}
	}
	return spec, spec.Validate()
}

// Validate 检查步长与进制。
func (s SequenceSpec) Validate() error {
	if s.Step == 0 {
		return fmt.Errorf("%w: step 必须大于 0", ErrInvalidSequenceSpec)
	}
	if s.Radix < 2 || s.Radix > 36 {
		return fmt.Errorf("%w: radix %d 超出范围 (2-36)", ErrInvalidSequenceSpec, s.Radix)
	}
	return nil
}

// Sequence 生成 count 个序号：第 i 个为 Start + i*Step。
// Reverse 在数值生成之后、格式化之前整体反转列表。
// 16/8/2 进制分别带 0x/0o/0b 前缀，补零宽度作用于前缀之后的数字部分。
func Sequence(count int, spec SequenceSpec) ([]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	nums := make([]uint64, count)
	for i := range nums {
		hi, offset := bits.Mul64(uint64(i), spec.Step)
		n, carry := bits.Add64(spec.Start, offset, 0)
		if hi != 0 || carry != 0 {
			return nil, fmt.Errorf("%w: 第 %d 个序号超出 uint64 范围", ErrInvalidSequenceSpec, i+1)
		}
		nums[i] = n
	}
	if spec.Reverse {
		slices.Reverse(nums)
	}
	out := make([]string, count)
	for i, n := range nums {
		out[i] = FormatRadix(n, spec.Radix, spec.Width)
	}
	return out, nil
}

// FormatRadix 以 0-9A-Z 字母表格式化 n，并加上进制前缀与补零。
func FormatRadix(n uint64, radix, width int) string {
	digits := strings.ToUpper(strconv.FormatUint(n, radix))
	if pad := width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return radixPrefix(radix) + digits
}

func radixPrefix(radix int) string {
	switch radix {
	case 16:
		return "0x"
	case 8:
		return "0o"
	case 2:
		return "0b"
	}
	return ""
}
