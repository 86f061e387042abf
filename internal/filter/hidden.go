package filter

import (
	"path/filepath"
	"strings"
)

// hiddenMarker 是隐藏文件/目录名的前缀。
const hiddenMarker = "."

// IsHidden 判断路径中是否有任意一段以点号开头（包括文件名本身）。
//
// 只要任何一级祖先目录是隐藏目录，该路径就被视为隐藏，
// 因此调用方应传入已经清理过的路径（例如 filepath.Abs 的结果），
// 否则 "./src" 这类相对写法中的 "." 段也会命中。
func IsHidden(path string) bool {
	for _, segment := range strings.Split(path, string(filepath.Separator)) {
		if strings.HasPrefix(segment, hiddenMarker) {
			return true
		}
	}
	return false
}
