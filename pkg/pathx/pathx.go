/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pathx

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve 将路径绝对化并尽量解析符号链接，不改变原语义。
func Resolve(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", fmt.Errorf("路径不能为空")
	}

	// 绝对化 (Abs 已含 Clean 逻辑语义；失败时回退 Clean)
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	} else {
		p = filepath.Clean(p)
	}

	// 符号链接解析（忽略错误）仅需确认存在
	if _, err := os.Lstat(p); err == nil {
		if real, rerr := filepath.EvalSymlinks(p); rerr == nil {
			p = real
		}
	}
	return p, nil
}

// Exists 判断路径是否存在。不存在返回 (false,nil)。其它错误包装返回。
// 使用 Lstat，悬空的符号链接也视为存在。
func Exists(path string) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("路径不能为空")
	}
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("检查路径时出错: %w", err)
}

// IsDir 判断路径是否为目录，包含不存在场景处理。
// 如果返回错误，表示检查过程中出现严重问题。
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("检查目录时出错: %w", err)
	}
	return info.IsDir(), nil
}

// SplitName 以最后一个 "." 拆分文件名。
//
//	"a.tar.gz" -> ("a.tar", "gz")
//	"README"   -> ("README", "")
//	".bashrc"  -> ("", "bashrc")
func SplitName(name string) (prefix, suffix string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

// ListDir 返回目录下的直接子项名称（文件与目录），不递归。
// 结果按不区分大小写的主键 + 原值次键稳定排序，保证批次顺序可复现。
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录失败 %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	stableNameSort(names)
	return names, nil
}

// stableNameSort 对名称进行跨平台稳定排序：主键为不区分大小写的值，次键为原值。
func stableNameSort(names []string) {
	sort.Slice(names, func(i, j int) bool {
		ai := strings.ToLower(names[i])
		aj := strings.ToLower(names[j])
		if ai == aj {
			return names[i] < names[j]
		}
		return ai < aj
	})
}
