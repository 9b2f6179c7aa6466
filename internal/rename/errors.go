/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package rename

import (
	"errors"
	"fmt"
)

var (
	// ErrRenameIO 单个文件的重命名调用失败，批次继续执行。
	ErrRenameIO = errors.New("rename failed")
	// ErrBatchLengthMismatch 某一列的值数量与批次文件数不一致。
	ErrBatchLengthMismatch = errors.New("batch length mismatch")
	// ErrInvalidTargetName 生成的名称不能作为目录项。
	ErrInvalidTargetName = errors.New("invalid target name")
	// ErrDuplicateTarget 两个文件生成了相同的名称。
	ErrDuplicateTarget = errors.New("duplicate target name")
	// ErrTargetExists 目标名称已被目录中的其他文件占用。
	ErrTargetExists = errors.New("target already exists")
	// ErrPromptClosed 确认输入在得到答复前被关闭。
	ErrPromptClosed = errors.New("confirmation input closed")
)

// FileError 记录单个文件的失败原因。
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }
