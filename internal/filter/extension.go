// Package filter 提供遍历过程中使用的纯判定函数：
// 后缀白名单过滤与隐藏路径过滤。
package filter

import (
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions 是未显式配置时使用的后缀白名单。
var DefaultExtensions = []string{".txt", ".py"}

// ExtensionSet 管理允许扫描的文件后缀。
// 后缀统一保存为小写并带点号（例如 .py）。
type ExtensionSet struct {
	allowed map[string]struct{}
}

// NewExtensionSet 创建后缀白名单。
// 入参可以写成 "py"、".py" 或 ".PY"，空白项会被忽略。
// 不传任何后缀时得到一个空集合，此时任何文件都不会匹配。
func NewExtensionSet(extensions ...string) *ExtensionSet {
	set := &ExtensionSet{
		allowed: make(map[string]struct{}, len(extensions)),
	}

	for _, ext := range extensions {
		normalized := normalizeExtension(ext)
		if normalized == "" {
			continue
		}
		set.allowed[normalized] = struct{}{}
	}

	return set
}

// Allows 判断文件路径的后缀是否在白名单中。
// 后缀取文件名最后一个点号之后的部分（含点号）并转为小写，没有后缀的文件永远不匹配。
func (s *ExtensionSet) Allows(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" || ext == "." {
		return false
	}
	_, ok := s.allowed[ext]
	return ok
}

// Extensions 返回排序后的后缀清单。
func (s *ExtensionSet) Extensions() []string {
	result := make([]string, 0, len(s.allowed))
	for ext := range s.allowed {
		result = append(result, ext)
	}
	sort.Strings(result)
	return result
}

// Len 返回白名单中的后缀数量。
func (s *ExtensionSet) Len() int {
	return len(s.allowed)
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
