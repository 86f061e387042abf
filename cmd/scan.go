package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"projstat/internal/filter"
	"projstat/internal/logger"
	"projstat/internal/report"
	"projstat/internal/scanner"
)

// noDirectoryMessage 在未提供目录时输出，这种情况不是错误。
const noDirectoryMessage = "No directory selected or operation canceled."

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	extensions     []string
	format         string
	output         string
	workers        int
	skipUnreadable bool
	logLevel       string
	quiet          bool
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	projstat scan .
//	projstat scan ./project --ext .go,.md --format json --output result.json
func newScanCmd() *cobra.Command {
	options := scanOptions{
		extensions: append([]string(nil), filter.DefaultExtensions...),
		format:     report.FormatSummary,
		workers:    1,
		logLevel:   "info",
	}

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描目录并输出行数统计",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgRed).Sprint(noDirectoryMessage))
				return err
			}

			format := strings.ToLower(strings.TrimSpace(options.format))
			if !slices.Contains(report.Formats(), format) {
				return fmt.Errorf("unsupported format, allowed values: %s", strings.Join(report.Formats(), ", "))
			}

			if options.workers <= 0 {
				return errors.New("workers must be greater than 0")
			}

			logLevel := options.logLevel
			if options.quiet {
				logLevel = "error"
			}
			if !logger.ValidLogLevel(logLevel) {
				return fmt.Errorf("invalid log level %q, allowed values: trace, debug, info, warn, error", logLevel)
			}

			extensions := filter.NewExtensionSet(options.extensions...)
			if extensions.Len() == 0 {
				return errors.New("at least one extension is required")
			}

			log := logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)
			log.LogInfo(fmt.Sprintf("Selected directory path: %s", args[0]))

			service := scanner.NewService(scanner.Options{
				Extensions:     extensions,
				Workers:        options.workers,
				SkipUnreadable: options.skipUnreadable,
				Logger:         log,
			})
			result, err := service.ScanPath(args[0])
			if err != nil {
				return err
			}

			if err := report.Render(cmd.OutOrStdout(), format, result); err != nil {
				return err
			}

			outputPath := strings.TrimSpace(options.output)
			if outputPath == "" {
				return nil
			}
			if err := report.WriteFile(outputPath, result); err != nil {
				return err
			}
			log.LogInfo(fmt.Sprintf("%s exported to %s", strings.ToUpper(report.ExportFormat(outputPath)), outputPath))
			return nil
		},
	}

	flags := scanCmd.Flags()
	flags.StringSliceVar(&options.extensions, "ext", options.extensions, "允许的文件后缀，可重复或用逗号分隔")
	flags.StringVar(&options.format, "format", options.format, "输出格式: summary、table、json 或 yaml")
	flags.StringVar(&options.output, "output", options.output, "导出文件路径，.yaml/.yml 导出 YAML，其余导出 JSON")
	flags.IntVar(&options.workers, "workers", options.workers, "并发分析文件的 worker 数量，1 表示顺序执行")
	flags.BoolVar(&options.skipUnreadable, "skip-unreadable", options.skipUnreadable, "跳过无法读取或解码的文件而不是中断扫描")
	flags.StringVar(&options.logLevel, "log-level", options.logLevel, "日志级别: trace、debug、info、warn、error")
	flags.BoolVar(&options.quiet, "quiet", options.quiet, "只输出错误日志")

	return scanCmd
}
