// Package model 定义 projstat 的核心数据模型。
// 这些结构会被分析器、扫描器、输出层和命令层共同使用。
package model

import "strconv"

// WordCount 表示"词频表"中的一项。
//
// 注意：这里的"词"是整行（去除首尾空白后的内容），而不是按空白切分的单词。
type WordCount struct {
	Line  string `json:"line" yaml:"line"`
	Count int    `json:"count" yaml:"count"`
}

// FileRecord 表示单文件分析结果，创建后不再修改。
//
// 约束：
// - BlankLineCount <= LineCount
// - WordFrequency 按 Count 降序，Count 相同时保持首次出现顺序
type FileRecord struct {
	Path           string      `json:"path" yaml:"path"`
	LineCount      int         `json:"line_count" yaml:"line_count"`
	BlankLineCount int         `json:"blank_line_count" yaml:"blank_line_count"`
	WordFrequency  []WordCount `json:"word_frequency" yaml:"word_frequency"`
}

// Label 按 "<path>|<n>lines" 格式输出文件描述。
func (r FileRecord) Label() string {
	return r.Path + "|" + strconv.Itoa(r.LineCount) + "lines"
}

// ScanError 记录单文件扫描失败信息。
// 仅在启用"跳过不可读文件"策略时出现，默认策略下任何文件错误都会中断扫描。
type ScanError struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// ScanResult 是一次扫描的完整结果。
// Longest/Shortest 指向 Files 中的元素，Files 为空时二者为 nil；
// 序列化时它们以 Summary 中的标签形式输出，不重复输出整条记录。
type ScanResult struct {
	ScannedPath     string       `json:"scanned_path" yaml:"scanned_path"`
	Files           []FileRecord `json:"files" yaml:"files"`
	TotalLines      int          `json:"total_lines" yaml:"total_lines"`
	TotalBlankLines int          `json:"total_blank_lines" yaml:"total_blank_lines"`
	Longest         *FileRecord  `json:"-" yaml:"-"`
	Shortest        *FileRecord  `json:"-" yaml:"-"`
	Errors          []ScanError  `json:"errors" yaml:"errors"`
}

// Summary 是对外暴露的项目级汇总，字段名与旧版工具输出保持一致。
type Summary struct {
	AllLinesInProject int     `json:"all_lines_in_project" yaml:"all_lines_in_project"`
	WhiteSpacesTotal  int     `json:"white_spaces_total" yaml:"white_spaces_total"`
	LongestFile       *string `json:"longest_file" yaml:"longest_file"`
	ShortestFile      *string `json:"shortest_file" yaml:"shortest_file"`
}

// Summary 从扫描结果生成汇总。
func (r ScanResult) Summary() Summary {
	return Summary{
		AllLinesInProject: r.TotalLines,
		WhiteSpacesTotal:  r.TotalBlankLines,
		LongestFile:       labelOf(r.Longest),
		ShortestFile:      labelOf(r.Shortest),
	}
}

func labelOf(record *FileRecord) *string {
	if record == nil {
		return nil
	}
	label := record.Label()
	return &label
}
