/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package namex

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxNameBytes 是常见文件系统（ext4 / APFS / NTFS）单个名称的字节上限。
const MaxNameBytes = 255

// ErrInvalidName 表示名称不能作为单个目录项使用。
var ErrInvalidName = errors.New("invalid file name")

// invalidRunes 在 Windows 上不可用于文件名的字符，其余平台也尽量避免。
const invalidRunes = `<>:"/\|?*`

// Sanitize 将名称转换为跨平台安全的文件名。
//
// 处理流程:
//  1. 使用 Unicode NFKC 归一化，兼容全角字符等。
//  2. 非法字符与控制字符替换为下划线。
//  3. 合并连续空白为单个空格。
//  4. 去除末尾的点与空白（Windows 限制）。
func Sanitize(name string) string {
	if name == "" {
		return ""
	}
	name = norm.NFKC.String(name)
	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		switch {
		case unicode.IsControl(r) || strings.ContainsRune(invalidRunes, r):
			b.WriteByte('_')
			prevSpace = false
		case unicode.IsSpace(r):
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
		default:
			b.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimRight(b.String(), ". ")
}

// Validate 检查名称能否作为同一目录下的单个目录项。
func Validate(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: 名称为空", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: 保留名称 %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q 包含路径分隔符", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q 包含 NUL 字符", ErrInvalidName, name)
	case len(name) > MaxNameBytes:
		return fmt.Errorf("%w: 名称超过 %d 字节", ErrInvalidName, MaxNameBytes)
	}
	return nil
}
