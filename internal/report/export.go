package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"projstat/internal/model"
)

// ExportFormat 根据导出文件后缀推断格式：.yaml/.yml 为 YAML，其余为 JSON。
func ExportFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// WriteFile 将扫描结果导出到指定路径。
// 如果目录不存在会自动创建；写入过程持有 "<path>.lock" 文件锁，
// 并通过临时文件加重命名完成，读者不会看到写了一半的文件。
func WriteFile(path string, result model.ScanResult) error {
	var (
		content []byte
		err     error
	)
	switch ExportFormat(path) {
	case FormatYAML:
		content, err = marshalYAML(result)
	default:
		content, err = marshalJSON(result)
	}
	if err != nil {
		return err
	}

	return lockAndWrite(path, content)
}

// lockAndWrite 加锁后原子写入文件，锁文件在写入完成后删除。
func lockAndWrite(path string, data []byte) error {
	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire lock on %s: %w", lockPath, err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	return atomicWrite(path, data)
}

// atomicWrite 先写同目录下的临时文件，再重命名为目标文件。
func atomicWrite(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("write output file %s: %w", path, err)
	}

	tempFile = nil
	return nil
}
