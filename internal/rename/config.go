/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package rename

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"renamer/pkg/logger"
	"renamer/pkg/pathx"
)

// Config 汇集了从命令行接收到的所有重命名参数。
type Config struct {
	Source    string
	Target    string
	Dir       string
	Regex     bool // 单文件模式下 Source 按正则表达式解释
	Pattern   bool // Source 是带 {name} 占位符的正则表达式，批量匹配目录下所有条目
	Literal   bool // 模式中占位符之间的文本按字面量匹配
	Wildcard  bool // 目标模板允许 source/prefix/suffix/n/rand
	Yes       bool // 跳过确认
	DryRun    bool
	Overwrite bool
	Sanitize  bool
}

// Verify 校验并规范化配置。
func (c *Config) Verify() error {
	// 1. 源与目标（首尾空白属于模板内容，不做修剪）
	if strings.TrimSpace(c.Source) == "" {
		return errors.New("SOURCE 不能为空")
	}
	if strings.TrimSpace(c.Target) == "" {
		return errors.New("TARGET 不能为空")
	}

	// 2. 工作目录
	dir := strings.TrimSpace(c.Dir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("无法获取当前工作目录: %w", err)
		}
		dir = wd
		logger.Log().Debug("未指定目录，使用当前目录", "dir", dir)
	}
	resolved, err := pathx.Resolve(dir)
	if err != nil {
		return fmt.Errorf("无法解析目录 '%s': %w", dir, err)
	}
	isDir, err := pathx.IsDir(resolved)
	if err != nil {
		return fmt.Errorf("无法检查目录 '%s': %w", resolved, err)
	}
	if !isDir {
		return fmt.Errorf("'%s' 不是目录", resolved)
	}
	c.Dir = resolved
	return nil
}

// PlanOptions 返回与配置对应的计划选项。
func (c *Config) PlanOptions() PlanOptions {
	return PlanOptions{Overwrite: c.Overwrite, Sanitize: c.Sanitize}
}
