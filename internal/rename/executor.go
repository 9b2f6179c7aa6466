/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"renamer/internal/metadata"
	"renamer/internal/pattern"
	"renamer/internal/util"
	"renamer/pkg/logger"
)

// BatchResult 汇总一次批量重命名的结果。
type BatchResult struct {
	Succeeded []string    // 已重命名的原名称
	Failed    []FileError // 重命名调用失败的文件
	Unchanged []string    // 新旧名称相同而跳过的文件
	Excluded  []FileError // 元数据不可用而移出批次的文件
	Cancelled bool
	DryRun    bool
}

// OK 在没有任何文件重命名失败时返回 true。取消与预览均视为成功。
func (r *BatchResult) OK() bool {
	return len(r.Failed) == 0
}

// Renamer 负责展开模板、预览、确认并执行重命名。
type Renamer struct {
	Metadata metadata.Provider
	Prompter Prompter
	Out      io.Writer // 计划预览输出
	Options  PlanOptions
	DryRun   bool
}

// NewRenamer 创建使用默认元数据读取器与标准输入确认的 Renamer。
func NewRenamer() *Renamer {
	return &Renamer{
		Metadata: metadata.NewReader(),
		Prompter: NewLinePrompter(os.Stdin, os.Stdout),
		Out:      os.Stdout,
	}
}

// Plan 展开目标模板并校验结果，不修改文件系统。
// wildcard 为 true 时允许 source/prefix/suffix/n/rand 通配符。
func (r *Renamer) Plan(batch Batch, maps []pattern.VariableMap, target string, wildcard bool) (*Plan, error) {
	res := &resolver{provider: r.Metadata, wildcard: wildcard}
	out, err := res.resolve(batch, maps, target)
	if err != nil {
		return nil, fmt.Errorf("展开目标模板失败: %w", err)
	}
	plan, err := buildPlan(batch.Dir, out, r.Options)
	if err != nil {
		return nil, fmt.Errorf("重命名计划校验失败: %w", err)
	}
	return plan, nil
}

// RenameBatch 为批次中的每个文件生成新名称，打印计划，确认后逐个重命名。
// 单个文件失败不会中断后续文件；用户取消时不修改任何文件。
func (r *Renamer) RenameBatch(batch Batch, maps []pattern.VariableMap, target string, wildcard bool) (*BatchResult, error) {
	plan, err := r.Plan(batch, maps, target, wildcard)
	if err != nil {
		return nil, err
	}
	result := &BatchResult{Excluded: plan.Excluded, DryRun: r.DryRun}
	for _, e := range plan.Entries {
		if e.Unchanged {
			result.Unchanged = append(result.Unchanged, e.Original)
		}
	}

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	plan.Preview(out)
	plan.logPlan()

	pending := plan.Pending()
	if r.DryRun {
		logger.Log().Info("预览模式，不执行重命名", "pending", len(pending))
		return result, nil
	}
	if len(pending) == 0 {
		logger.Log().Info("没有需要重命名的文件")
		return result, nil
	}

	prompter := r.Prompter
	if prompter == nil {
		prompter = NewLinePrompter(os.Stdin, out)
	}
	ok, err := prompter.Confirm(plan)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Log().Info("已取消重命名")
		result.Cancelled = true
		return result, nil
	}

	r.execute(plan.Dir, pending, result)
	logger.Log().Info("重命名完成", "succeeded", len(result.Succeeded), "failed", len(result.Failed),
		"unchanged", len(result.Unchanged), "excluded", len(result.Excluded))
	return result, nil
}

// execute 按计划顺序逐个重命名，失败记录到 result 后继续。
func (r *Renamer) execute(dir string, pending []Entry, result *BatchResult) {
	total := len(pending)
	width := util.IntDigits(total)
	for i, e := range pending {
		progress := fmt.Sprintf("[%0*d/%d]", width, i+1, total)
		message := fmt.Sprintf("%12s", progress)
		if err := os.Rename(filepath.Join(dir, e.Original), filepath.Join(dir, e.Target)); err != nil {
			logger.Log().Error(message, "original", e.Original, "target", e.Target, "error", err)
			result.Failed = append(result.Failed, FileError{Name: e.Original, Err: fmt.Errorf("%w: %v", ErrRenameIO, err)})
			continue
		}
		logger.Log().Info(message, "original", e.Original, "target", e.Target)
		result.Succeeded = append(result.Succeeded, e.Original)
	}
}
