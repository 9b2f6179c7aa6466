/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package cmd

import (
	"os"

	"renamer/internal/version"
	"renamer/pkg/logger"

	"github.com/spf13/cobra"
)

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "renamer",
	Short:   "基于模板的批量重命名工具",
	Long:    "renamer 从源模式中提取变量，结合元数据、序号与随机数按目标模板批量重命名目录中的文件。",
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logLevel)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.MousetrapHelpText = ""
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log levels (debug, info, warn, error)")
}
