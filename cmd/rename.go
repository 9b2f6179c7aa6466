/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package cmd

import (
	"errors"
	"fmt"

	"renamer/internal/rename"
	"renamer/pkg/logger"

	"github.com/spf13/cobra"
)

// errBatchFailed 表示至少一个文件重命名失败，进程以非零状态退出。
var errBatchFailed = errors.New("部分文件重命名失败")

// 命令行参数变量
var (
	renameDir       string
	renameRegex     bool
	renamePattern   bool
	renameLiteral   bool
	renameWildcard  bool
	renameYes       bool
	renameDryRun    bool
	renameOverwrite bool
	renameSanitize  bool
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename SOURCE TARGET",
	Short: "Rename files in a directory from a target template",
	Long: `在目录中选出待重命名的文件，按目标模板生成新名称，预览并确认后执行。

选择文件:
  * 默认: 第一个名称包含 SOURCE 的条目。
  * -r/--regex: SOURCE 为正则表达式，第一个匹配的条目。
  * -p/--pattern: SOURCE 为正则表达式，其中的 {name} 占位符替换为捕获组，
    匹配目录下所有条目并捕获变量；加 -l/--literal 时占位符之间的文本按字面量处理。

目标模板变量:
  * {name}: 源模式中捕获的变量，支持截取 {name:3} {name:1:3} {name:1-4}。
  * {audio:title} {video:width} {image:create_date}: 文件元数据，缺失的文件会被移出批次。
  * -w/--wildcard 开启内置通配符:
      {source} {prefix} {suffix}   完整名称 / 最后一个 "." 前后的部分
      {n} {n:start=1,width=3,step=1,radix=16,reverse}   序号
      {rand} {rand:8}              随机数字
  * 前缀 + / - 转换为大写 / 小写，如 {+suffix}；"\{" "\}" 输出字面花括号。

示例:
  # a1.jpg a2.jpg -> img_1JPG img_2JPG
  renamer rename -p -w "a{num}.jpg" "img_{num}{+suffix}"

  # 按拍摄日期与序号重命名照片，仅预览
  renamer rename -p -w -d photos "{stem}\.jpg$" "{image:datetime_original}_{n:start=1,width=3}.jpg" --sanitize --dry-run
`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		command, err := rename.NewCommand(rename.Config{
			Source:    args[0],
			Target:    args[1],
			Dir:       renameDir,
			Regex:     renameRegex,
			Pattern:   renamePattern,
			Literal:   renameLiteral,
			Wildcard:  renameWildcard,
			Yes:       renameYes,
			DryRun:    renameDryRun,
			Overwrite: renameOverwrite,
			Sanitize:  renameSanitize,
		})
		if err != nil {
			logger.Log().Error("创建重命名命令失败", "error", err)
			return fmt.Errorf("创建重命名命令失败: %w", err)
		}
		command.Renamer.Out = cmd.OutOrStdout()
		command.Renamer.Prompter = promptFor(cmd)

		logger.Log().Debug("开始执行重命名")
		result, err := command.Execute()
		if err != nil {
			logger.Log().Error("重命名失败", "error", err)
			return err
		}
		for _, fe := range result.Failed {
			logger.Log().Error("重命名失败", "name", fe.Name, "error", fe.Err)
		}
		if !result.OK() {
			return fmt.Errorf("%w: %d 个", errBatchFailed, len(result.Failed))
		}
		return nil
	},
}

func promptFor(cmd *cobra.Command) rename.Prompter {
	if renameYes {
		return rename.AutoConfirm{}
	}
	return rename.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

func init() {
	rootCmd.AddCommand(renameCmd)

	renameCmd.Flags().StringVarP(&renameDir, "dir", "d", "", "工作目录，默认为当前目录")
	renameCmd.Flags().BoolVarP(&renameRegex, "regex", "r", false, "SOURCE 按正则表达式解释")
	renameCmd.Flags().BoolVarP(&renamePattern, "pattern", "p", false, "SOURCE 为带 {name} 占位符的正则表达式，批量匹配")
	renameCmd.Flags().BoolVarP(&renameLiteral, "literal", "l", false, "与 -p 同用，占位符之间的文本按字面量匹配")
	renameCmd.Flags().BoolVarP(&renameWildcard, "wildcard", "w", false, "启用 {source}{prefix}{suffix}{n}{rand} 通配符")
	renameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false, "跳过确认直接执行")
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "仅预览重命名计划，不执行")
	renameCmd.Flags().BoolVar(&renameOverwrite, "overwrite", false, "允许覆盖已存在的目标文件")
	renameCmd.Flags().BoolVar(&renameSanitize, "sanitize", false, "替换新名称中的非法字符")
}
