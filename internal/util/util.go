/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package util

import (
	"crypto/rand"
)

// 计算有符号整数的位数（忽略负号）
func IntDigits(n int) int {
	if n == 0 {
		return 1 // 边界值：0 的位数是 1
	}
	count := 0
	if n < 0 {
		n = -n
	}
	for n > 0 {
		n = n / 10
		count++
	}
	return count
}

// RandomDigits 返回 n 位十进制数字组成的随机字符串。
// 使用拒绝采样（丢弃 >= 250 的字节）避免取模偏差。
func RandomDigits(n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if b >= 250 {
				continue
			}
			out = append(out, '0'+b%10)
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
