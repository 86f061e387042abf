package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"projstat/internal/model"
)

// disableColor 关闭颜色，保证断言面对的是纯文本。
func disableColor(t *testing.T) {
	t.Helper()

	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

// sampleResult 构造一个两文件的扫描结果。
func sampleResult() model.ScanResult {
	files := []model.FileRecord{
		{
			Path:           filepath.Join("/project", "a.py"),
			LineCount:      3,
			BlankLineCount: 1,
			WordFrequency:  []model.WordCount{{Line: "x", Count: 2}, {Line: "", Count: 1}},
		},
		{
			Path:          filepath.Join("/project", "docs", "b.txt"),
			LineCount:     1,
			WordFrequency: []model.WordCount{{Line: "y", Count: 1}},
		},
	}
	return model.ScanResult{
		ScannedPath:     "/project",
		Files:           files,
		TotalLines:      4,
		TotalBlankLines: 1,
		Longest:         &files[0],
		Shortest:        &files[1],
	}
}

func TestPrintSummary(t *testing.T) {
	disableColor(t)

	buf := &bytes.Buffer{}
	require.NoError(t, PrintSummary(buf, sampleResult()))

	expected := strings.Join([]string{
		"all_lines_in_project: 4",
		"white_spaces_total: 1",
		"longest_file: " + filepath.Join("/project", "a.py") + "|3lines",
		"shortest_file: " + filepath.Join("/project", "docs", "b.txt") + "|1lines",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestPrintSummaryEmpty(t *testing.T) {
	disableColor(t)

	buf := &bytes.Buffer{}
	require.NoError(t, PrintSummary(buf, model.ScanResult{}))

	assert.Contains(t, buf.String(), "all_lines_in_project: 0\n")
	assert.Contains(t, buf.String(), "longest_file: null\n")
	assert.Contains(t, buf.String(), "shortest_file: null\n")
}

func TestPrintTable(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, PrintTable(buf, sampleResult()))

	output := buf.String()
	assert.Contains(t, output, "SCANNED PATH")
	assert.Contains(t, output, "a.py")
	assert.Contains(t, output, "docs/b.txt")
	assert.Contains(t, output, `"x" x2`)
	assert.Regexp(t, `TOTAL\s+4\s+1`, output)
	assert.Contains(t, output, "a.py|3lines")
	assert.NotContains(t, output, "ERROR FILE")
}

func TestPrintTableWithErrors(t *testing.T) {
	result := sampleResult()
	result.Errors = []model.ScanError{{Path: filepath.Join("/project", "bad.txt"), Error: "decode file"}}

	buf := &bytes.Buffer{}
	require.NoError(t, PrintTable(buf, result))

	assert.Contains(t, buf.String(), "ERROR FILE")
	assert.Contains(t, buf.String(), "bad.txt")
}

func TestPrintJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, PrintJSON(buf, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	summary, ok := decoded["summary"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 4, summary["all_lines_in_project"])
	assert.EqualValues(t, 1, summary["white_spaces_total"])
	assert.Equal(t, filepath.Join("/project", "a.py")+"|3lines", summary["longest_file"])

	files, ok := decoded["files"].([]any)
	require.True(t, ok)
	assert.Len(t, files, 2)
	assert.Equal(t, []any{}, decoded["errors"])
}

func TestPrintJSONEmptyResult(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, PrintJSON(buf, model.ScanResult{}))

	assert.Contains(t, buf.String(), `"longest_file": null`)
	assert.Contains(t, buf.String(), `"files": []`)
}

func TestPrintYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, PrintYAML(buf, sampleResult()))

	var decoded Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "/project", decoded.ScannedPath)
	assert.Equal(t, 4, decoded.Summary.AllLinesInProject)
	require.NotNil(t, decoded.Summary.ShortestFile)
	assert.Equal(t, filepath.Join("/project", "docs", "b.txt")+"|1lines", *decoded.Summary.ShortestFile)
	require.Len(t, decoded.Files, 2)
	assert.Equal(t, []model.WordCount{{Line: "x", Count: 2}, {Line: "", Count: 1}}, decoded.Files[0].WordFrequency)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, "xml", sampleResult())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExportFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, ExportFormat("out/result.yaml"))
	assert.Equal(t, FormatYAML, ExportFormat("result.YML"))
	assert.Equal(t, FormatJSON, ExportFormat("result.json"))
	assert.Equal(t, FormatJSON, ExportFormat("result"))
}

func TestWriteFile(t *testing.T) {
	tempDir := t.TempDir()

	jsonPath := filepath.Join(tempDir, "nested", "output.json")
	require.NoError(t, WriteFile(jsonPath, sampleResult()))

	content, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(content))
	assert.NoFileExists(t, jsonPath+".lock")

	yamlPath := filepath.Join(tempDir, "output.yaml")
	require.NoError(t, WriteFile(yamlPath, sampleResult()))

	content, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "all_lines_in_project: 4")

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), ".tmp-"), "temp file left behind: %s", entry.Name())
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteFile(path, sampleResult()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale")
}
