// Package cmd 提供 projstat 的命令行入口与子命令编排。
package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string) *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "projstat",
		Short: "项目文件行数统计工具",
		Long: "projstat 递归扫描项目目录，统计白名单后缀文件的行数、空行数与行频，\n" +
			"并汇总项目总行数、总空行数以及最长/最短文件。隐藏文件与隐藏目录会被跳过。",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "关闭彩色输出")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newExtensionsCmd())
	rootCmd.AddCommand(newScanCmd())

	return rootCmd
}
