package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
)

// macOS 压缩时附带的元数据目录，探测根目录时忽略
const macMetadataDir = "__MACOSX"

// DetectProjectRoot 在解压目录中选择分析目标
//
// 规则：顶层（忽略 __MACOSX）恰好包含一个子目录且没有任何普通文件时，
// 根目录为该子目录；其余情况都使用解压目录本身。GUI 压缩往往把真正的
// 项目包在一层外壳目录里，这条规则只向下剥一层；更深的嵌套不再展开。
func DetectProjectRoot(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read extraction dir: %w", err)
	}

	var dirs []string
	files := 0
	for _, entry := range entries {
		if entry.Name() == macMetadataDir {
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else {
			files++
		}
	}

	if len(dirs) == 1 && files == 0 {
		return filepath.Join(dir, dirs[0]), nil
	}
	return dir, nil
}
