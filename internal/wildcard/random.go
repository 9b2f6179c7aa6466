/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package wildcard

import (
	"math"
	"strconv"
	"strings"

	"renamer/internal/util"
)

const (
	// DefaultRandomLength 是 {rand} 或长度无法解析时的位数。
	DefaultRandomLength = 6
	// MaxRandomLength 单个文件名字节上限，更长的随机串无法成为合法名称。
	MaxRandomLength = 255
)

// ParseRandomLength 解析 {rand:n} 中的 n，失败或非正数时返回默认值，超过上限时截断为 MaxRandomLength。
func ParseRandomLength(modifier string) int {
	n, err := strconv.Atoi(strings.TrimSpace(modifier))
	if err != nil || n <= 0 {
		return DefaultRandomLength
	}
	return min(n, MaxRandomLength)
}

// Random 生成 count 个 length 位的十进制随机串。
// 当 count <= 10^length 时保证本次调用内两两不同；否则各自独立采样，允许重复。
func Random(count, length int) []string {
	return randomWith(count, length, util.RandomDigits)
}

func randomWith(count, length int, gen func(int) string) []string {
	out := make([]string, 0, count)
	if !uniqueFeasible(count, length) {
		for i := 0; i < count; i++ {
			out = append(out, gen(length))
		}
		return out
	}
	used := make(map[string]struct{}, count)
	for len(out) < count {
		v := gen(length)
		if _, dup := used[v]; dup {
			continue
		}
		used[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// uniqueFeasible 判断 10^length 是否足以覆盖 count 个不同值。
func uniqueFeasible(count, length int) bool {
	if length >= 19 { // 10^19 超过 int64，必然足够
		return true
	}
	return float64(count) <= math.Pow10(length)
}
