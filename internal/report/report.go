// Package report 提供 projstat 的输出能力。
// 当前实现支持 summary、table 控制台格式以及 JSON、YAML 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"projstat/internal/model"
)

// 支持的输出格式。
const (
	FormatSummary = "summary"
	FormatTable   = "table"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// Formats 返回全部支持的输出格式。
func Formats() []string {
	return []string{FormatSummary, FormatTable, FormatJSON, FormatYAML}
}

// Document 是 JSON/YAML 输出的顶层结构。
type Document struct {
	ScannedPath string             `json:"scanned_path" yaml:"scanned_path"`
	Summary     model.Summary      `json:"summary" yaml:"summary"`
	Files       []model.FileRecord `json:"files" yaml:"files"`
	Errors      []model.ScanError  `json:"errors" yaml:"errors"`
}

// NewDocument 从扫描结果构造输出文档。
func NewDocument(result model.ScanResult) Document {
	files := result.Files
	if files == nil {
		files = make([]model.FileRecord, 0)
	}
	errs := result.Errors
	if errs == nil {
		errs = make([]model.ScanError, 0)
	}
	return Document{
		ScannedPath: result.ScannedPath,
		Summary:     result.Summary(),
		Files:       files,
		Errors:      errs,
	}
}

// Render 按指定格式输出扫描结果。
func Render(writer io.Writer, format string, result model.ScanResult) error {
	switch format {
	case FormatSummary:
		return PrintSummary(writer, result)
	case FormatTable:
		return PrintTable(writer, result)
	case FormatJSON:
		return PrintJSON(writer, result)
	case FormatYAML:
		return PrintYAML(writer, result)
	default:
		return fmt.Errorf("unsupported format %q, allowed values: %s", format, strings.Join(Formats(), ", "))
	}
}

// PrintSummary 输出项目级汇总，字段名与旧版工具一致。
func PrintSummary(writer io.Writer, result model.ScanResult) error {
	summary := result.Summary()
	label := color.New(color.FgCyan)

	rows := []struct {
		key   string
		value string
	}{
		{"all_lines_in_project", strconv.Itoa(summary.AllLinesInProject)},
		{"white_spaces_total", strconv.Itoa(summary.WhiteSpacesTotal)},
		{"longest_file", optional(summary.LongestFile)},
		{"shortest_file", optional(summary.ShortestFile)},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(writer, "%s: %s\n", label.Sprint(row.key), row.value); err != nil {
			return err
		}
	}
	return nil
}

// PrintTable 使用表格展示扫描结果。
func PrintTable(writer io.Writer, result model.ScanResult) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "SCANNED PATH\t%s\n\n", result.ScannedPath); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(tw, "FILE\tLINES\tBLANK\tTOP LINE"); err != nil {
		return err
	}
	for _, item := range result.Files {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%d\t%d\t%s\n",
			displayPath(result.ScannedPath, item.Path),
			item.LineCount,
			item.BlankLineCount,
			topLine(item),
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(
		tw,
		"\nTOTAL\t%d\t%d\t\n",
		result.TotalLines,
		result.TotalBlankLines,
	); err != nil {
		return err
	}

	summary := result.Summary()
	if _, err := fmt.Fprintf(tw, "LONGEST\t%s\n", optional(summary.LongestFile)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "SHORTEST\t%s\n", optional(summary.ShortestFile)); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		if _, err := fmt.Fprintln(tw, "\nERROR FILE\tMESSAGE"); err != nil {
			return err
		}
		for _, item := range result.Errors {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", displayPath(result.ScannedPath, item.Path), item.Error); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := marshalJSON(result)
	if err != nil {
		return err
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// PrintYAML 把扫描结果按 YAML 输出到任意 writer。
func PrintYAML(writer io.Writer, result model.ScanResult) error {
	content, err := marshalYAML(result)
	if err != nil {
		return err
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return nil
}

func marshalJSON(result model.ScanResult) ([]byte, error) {
	content, err := json.MarshalIndent(NewDocument(result), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(content, '\n'), nil
}

func marshalYAML(result model.ScanResult) ([]byte, error) {
	content, err := yaml.Marshal(NewDocument(result))
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return content, nil
}

// displayPath 在表格中展示相对扫描根目录的路径。
func displayPath(root string, path string) string {
	if root == "" {
		return path
	}
	relativePath, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(relativePath)
}

// topLine 返回出现次数最多的行，例如 `"x" x2`。
func topLine(record model.FileRecord) string {
	if len(record.WordFrequency) == 0 {
		return "-"
	}
	top := record.WordFrequency[0]
	return fmt.Sprintf("%q x%d", truncate(top.Line, 40), top.Count)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func optional(value *string) string {
	if value == nil {
		return "null"
	}
	return *value
}
