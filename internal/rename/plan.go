/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package rename

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"renamer/internal/util"
	"renamer/pkg/logger"
	"renamer/pkg/namex"
	"renamer/pkg/pathx"

	"github.com/charmbracelet/lipgloss"
)

var (
	targetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// Entry 是计划中的一行：原名称 -> 新名称。
type Entry struct {
	Original  string
	Target    string
	Unchanged bool // 新旧名称相同，执行时跳过
}

// Plan 是经过校验的重命名计划，每个批次文件恰好对应一行。
type Plan struct {
	Dir      string
	Entries  []Entry
	Excluded []FileError
}

// PlanOptions 控制名称的后处理与冲突校验。
type PlanOptions struct {
	Overwrite bool // 允许覆盖目录中已有的同名文件
	Sanitize  bool // 校验前替换非法字符
}

// Pending 返回需要实际重命名的条目。
func (p *Plan) Pending() []Entry {
	out := make([]Entry, 0, len(p.Entries))
	for _, e := range p.Entries {
		if !e.Unchanged {
			out = append(out, e)
		}
	}
	return out
}

// buildPlan 将展开结果转换为计划并在提示确认前完成所有校验。
// 所有问题一并返回（errors.Join），任一问题都不会执行重命名。
func buildPlan(dir string, res *resolved, opts PlanOptions) (*Plan, error) {
	plan := &Plan{Dir: dir, Entries: make([]Entry, 0, len(res.Names)), Excluded: res.Excluded}
	var problems []error
	seen := make(map[string]string, len(res.Names))

	for i, original := range res.Names {
		target := res.Targets[i]
		if opts.Sanitize {
			target = namex.Sanitize(target)
		}
		if err := namex.Validate(target); err != nil {
			hint := ""
			if !opts.Sanitize && namex.Validate(namex.Sanitize(target)) == nil {
				hint = "（可使用 --sanitize 替换非法字符）"
			}
			problems = append(problems, FileError{Name: original, Err: fmt.Errorf("%w: %v%s", ErrInvalidTargetName, err, hint)})
			continue
		}
		if prev, dup := seen[target]; dup {
			problems = append(problems, FileError{Name: original, Err: fmt.Errorf("%w: %q 与 %q 同为 %q", ErrDuplicateTarget, original, prev, target)})
			continue
		}
		seen[target] = original

		entry := Entry{Original: original, Target: target, Unchanged: original == target}
		if !entry.Unchanged && !opts.Overwrite {
			if err := checkVacant(dir, original, target); err != nil {
				problems = append(problems, FileError{Name: original, Err: err})
				continue
			}
		}
		plan.Entries = append(plan.Entries, entry)
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return plan, nil
}

// checkVacant 检查目标名称未被其他文件占用。
// 不区分大小写的文件系统上仅改变大小写时，目标即文件自身，不视为冲突。
func checkVacant(dir, original, target string) error {
	targetPath := filepath.Join(dir, target)
	exists, err := pathx.Exists(targetPath)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	src, serr := os.Lstat(filepath.Join(dir, original))
	dst, derr := os.Lstat(targetPath)
	if serr == nil && derr == nil && os.SameFile(src, dst) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrTargetExists, target)
}

// Preview 将计划逐行写入 w，新名称高亮显示。
func (p *Plan) Preview(w io.Writer) {
	fmt.Fprintf(w, "重命名 (%s):\n", p.Dir)
	for _, e := range p.Entries {
		if e.Unchanged {
			fmt.Fprintf(w, "  %s %s\n", e.Original, unchangedStyle.Render("(unchanged)"))
			continue
		}
		fmt.Fprintf(w, "  %s -> %s\n", e.Original, targetStyle.Render(e.Target))
	}
	for _, fe := range p.Excluded {
		fmt.Fprintf(w, "  %s %s\n", fe.Name, unchangedStyle.Render("(excluded)"))
	}
}

// logPlan 以 [i/n] 进度格式记录计划，便于在日志中回溯。
func (p *Plan) logPlan() {
	total := len(p.Entries)
	width := util.IntDigits(total)
	for i, e := range p.Entries {
		progress := fmt.Sprintf("[%0*d/%d]", width, i+1, total)
		message := fmt.Sprintf("%12s", progress)
		logger.Log().Debug(message, "original", e.Original, "target", e.Target, "unchanged", e.Unchanged)
	}
}
