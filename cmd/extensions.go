package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"projstat/internal/filter"
)

// newExtensionsCmd 创建 extensions 子命令。
// 命令用于展示当前生效的后缀白名单，--ext 的解析方式与 scan 相同。
func newExtensionsCmd() *cobra.Command {
	extensions := append([]string(nil), filter.DefaultExtensions...)

	extensionsCmd := &cobra.Command{
		Use:   "extensions",
		Short: "展示生效的文件后缀白名单",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set := filter.NewExtensionSet(extensions...)
			for _, ext := range set.Extensions() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), ext); err != nil {
					return err
				}
			}
			return nil
		},
	}

	extensionsCmd.Flags().StringSliceVar(&extensions, "ext", extensions, "允许的文件后缀，可重复或用逗号分隔")

	return extensionsCmd
}
