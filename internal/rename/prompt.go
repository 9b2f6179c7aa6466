/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package rename

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter 在执行前询问是否继续。返回 false 表示用户取消。
type Prompter interface {
	Confirm(plan *Plan) (bool, error)
}

// LinePrompter 从 In 逐行读取答复：y 确认，c 取消，其他输入重新询问。
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter 创建基于行输入的确认器，通常为 os.Stdin / os.Stdout。
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm 实现 Prompter。输入在给出 y/c 之前结束时返回 ErrPromptClosed。
func (p *LinePrompter) Confirm(plan *Plan) (bool, error) {
	for {
		fmt.Fprintf(p.out, "确认重命名 %d 个文件? (y 确认 / c 取消): ", len(plan.Pending()))
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("读取确认输入失败: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "c":
			return false, nil
		}
		if err != nil {
			fmt.Fprintln(p.out)
			return false, ErrPromptClosed
		}
		fmt.Fprintln(p.out, "无效输入，请输入 y 或 c")
	}
}

// AutoConfirm 总是确认，对应 --yes。
type AutoConfirm struct{}

func (AutoConfirm) Confirm(*Plan) (bool, error) { return true, nil }
