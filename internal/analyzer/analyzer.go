// Package analyzer 负责单文件的行级统计。
// 该层只关心一个文件的内容，不负责目录遍历和跨文件汇总。
package analyzer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"projstat/internal/model"
)

var (
	// ErrNotAFile 表示分析目标是目录而不是文件。
	ErrNotAFile = errors.New("not a file")
	// ErrRead 表示文件无法打开或读取。
	ErrRead = errors.New("read file")
	// ErrDecode 表示文件内容不是合法的 UTF-8 文本。
	ErrDecode = errors.New("decode file")
)

// AnalyzeFile 读取并分析单个文件。
func AnalyzeFile(path string) (model.FileRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.FileRecord{}, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	if info.IsDir() {
		return model.FileRecord{}, fmt.Errorf("%w: %s is a directory", ErrNotAFile, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return model.FileRecord{}, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	record, analyzeErr := Analyze(path, file)
	closeErr := file.Close()

	if analyzeErr != nil {
		return model.FileRecord{}, analyzeErr
	}
	if closeErr != nil {
		return model.FileRecord{}, fmt.Errorf("%w %s: %w", ErrRead, path, closeErr)
	}
	return record, nil
}

// Analyze 流式读取 reader 并生成 path 对应的文件记录。
//
// 行的切分规则与常见的"按行读取"一致：
// - \n、\r\n 与单独的 \r 都视为行结束
// - 文件以换行结尾时不会多出一个空行
// - 空文件得到 0 行
func Analyze(path string, reader io.Reader) (model.FileRecord, error) {
	lines, err := readLines(path, reader)
	if err != nil {
		return model.FileRecord{}, err
	}

	record := model.FileRecord{
		Path:          path,
		LineCount:     len(lines),
		WordFrequency: countLines(lines),
	}
	for _, line := range lines {
		if line == "" {
			record.BlankLineCount++
		}
	}
	return record, nil
}

// readLines 返回去除首尾空白后的全部行。
func readLines(path string, reader io.Reader) ([]string, error) {
	var lines []string
	bufferedReader := bufio.NewReader(reader)

	for {
		chunk, err := bufferedReader.ReadString('\n')
		if errors.Is(err, io.EOF) && len(chunk) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
		}

		// '\n' 不会出现在多字节 UTF-8 序列中，按块校验不会误判。
		if !utf8.ValidString(chunk) {
			return nil, fmt.Errorf("%w %s: invalid utf-8 at line %d", ErrDecode, path, len(lines)+1)
		}

		for _, line := range strings.Split(normalizeLine(chunk), "\r") {
			lines = append(lines, strings.TrimSpace(line))
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return lines, nil
}

// normalizeLine 去除块末尾的换行符，适配 \r\n、\n 与单独的 \r。
// 块内部剩余的 \r 由调用方继续切分。
func normalizeLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}

// countLines 统计每个整行出现的次数，按次数降序稳定排序。
func countLines(lines []string) []model.WordCount {
	index := make(map[string]int, len(lines))
	counts := make([]model.WordCount, 0)

	for _, line := range lines {
		if position, ok := index[line]; ok {
			counts[position].Count++
			continue
		}
		index[line] = len(counts)
		counts = append(counts, model.WordCount{Line: line, Count: 1})
	}

	sort.SliceStable(counts, func(i int, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
