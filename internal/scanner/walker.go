package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"projstat/internal/filter"
)

var (
	// ErrPathNotFound 表示扫描根目录不存在。
	ErrPathNotFound = errors.New("path not found")
	// ErrAccessDenied 表示目录无法读取。
	ErrAccessDenied = errors.New("access denied")
	// ErrNotADirectory 表示扫描根路径不是目录。
	ErrNotADirectory = errors.New("not a directory")
)

// entryKind 是目录项在遍历中的分类。
type entryKind int

const (
	kindOther entryKind = iota
	kindDirectory
	kindFile
)

// checkRoot 校验扫描根路径存在、可访问且是目录。
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return classifyPathError(root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}
	return nil
}

// classifyPathError 把文件系统错误映射为扫描错误，原始错误保留在错误链中。
func classifyPathError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrPathNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrAccessDenied, path, err)
	default:
		return fmt.Errorf("read directory %s: %w", path, err)
	}
}

// walkDir 深度优先遍历 dir，对每个可接受的文件按遍历顺序调用 visit。
//
// 规则：
// - 隐藏目录连同整棵子树被跳过
// - 隐藏文件被跳过
// - 后缀不在白名单中的文件被跳过
//
// os.ReadDir 按文件名排序返回目录项，因此同一棵目录树的遍历顺序是稳定的。
func (s *Service) walkDir(dir string, visit func(path string) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return classifyPathError(dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if filter.IsHidden(path) {
			s.log.LogTrace("hidden: " + path)
			continue
		}

		switch resolveKind(path, entry) {
		case kindDirectory:
			s.log.LogVisit(path)
			if err := s.walkDir(path, visit); err != nil {
				return err
			}
		case kindFile:
			if !s.extensions.Allows(path) {
				s.log.LogSkip(path, "invalid extension")
				continue
			}
			s.log.LogVisit(path)
			if err := visit(path); err != nil {
				return err
			}
		default:
			s.log.LogTrace("not a regular file or directory: " + path)
		}
	}

	return nil
}

// resolveKind 判断目录项类型。
// 指向文件的符号链接按文件处理；指向目录的符号链接不跟随，避免链接成环时无限递归。
func resolveKind(path string, entry fs.DirEntry) entryKind {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return kindOther
		}
		return kindFile
	}

	if entry.IsDir() {
		return kindDirectory
	}
	if entry.Type().IsRegular() {
		return kindFile
	}
	return kindOther
}
