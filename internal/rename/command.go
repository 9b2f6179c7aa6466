/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package rename

import (
	"fmt"
	"regexp"
	"strings"

	"renamer/internal/pattern"
	"renamer/pkg/logger"
	"renamer/pkg/pathx"
)

// Command 根据模式选择批次并驱动 Renamer。
type Command struct {
	Config  Config
	Renamer *Renamer
}

// NewCommand 校验配置并创建命令。
func NewCommand(config Config) (*Command, error) {
	if err := config.Verify(); err != nil {
		return nil, fmt.Errorf("参数验证失败: %w", err)
	}
	r := NewRenamer()
	r.Options = config.PlanOptions()
	r.DryRun = config.DryRun
	if config.Yes {
		r.Prompter = AutoConfirm{}
	}
	return &Command{Config: config, Renamer: r}, nil
}

// Execute 列出目录，选择批次并执行批量重命名。
//
//   - Pattern: Source 作为正则表达式，其中的 {name} 占位符替换为捕获组，对目录中每个条目做匹配，
//     匹配成功的条目组成批次。Literal 时占位符之间的文本按字面量匹配。
//   - 否则: 第一个名称包含 Source（Regex 时为正则匹配）的条目单独组成批次。
func (c *Command) Execute() (*BatchResult, error) {
	cfg := c.Config
	logger.Log().Info("开始处理任务", "dir", cfg.Dir, "pattern", cfg.Pattern, "literal", cfg.Literal, "regex", cfg.Regex,
		"wildcard", cfg.Wildcard, "preview", cfg.DryRun)

	names, err := pathx.ListDir(cfg.Dir)
	if err != nil {
		return nil, err
	}

	batch, maps, err := c.selectBatch(names)
	if err != nil {
		return nil, err
	}
	if len(batch.Names) == 0 {
		logger.Log().Warn("没有匹配的文件", "source", cfg.Source, "dir", cfg.Dir)
		return &BatchResult{DryRun: cfg.DryRun}, nil
	}
	logger.Log().Info("文件匹配完成", "total", len(names), "matched", len(batch.Names))

	return c.Renamer.RenameBatch(batch, maps, cfg.Target, cfg.Wildcard)
}

func (c *Command) selectBatch(names []string) (Batch, []pattern.VariableMap, error) {
	cfg := c.Config
	batch := Batch{Dir: cfg.Dir}

	if cfg.Pattern {
		m, err := pattern.Compile(cfg.Source, pattern.Options{Literal: cfg.Literal})
		if err != nil {
			return batch, nil, err
		}
		matched, maps := m.Extract(names)
		batch.Names = matched
		return batch, maps, nil
	}

	match := func(name string) bool { return strings.Contains(name, cfg.Source) }
	if cfg.Regex {
		re, err := regexp.Compile(cfg.Source)
		if err != nil {
			return batch, nil, fmt.Errorf("%w: %v", pattern.ErrInvalidPattern, err)
		}
		match = re.MatchString
	}
	for _, name := range names {
		if match(name) {
			batch.Names = []string{name}
			return batch, []pattern.VariableMap{{}}, nil
		}
	}
	return batch, nil, nil
}
