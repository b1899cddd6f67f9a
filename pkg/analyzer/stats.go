package analyzer

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
)

// countChunkSize 行计数的读取块大小
const countChunkSize = 1 << 20 // 1 MiB

// aggregate 把分类器报告转换为最终统计
//
// 百分比按字节数占比计算并保留两位小数；总字节数最小取 1 以避免除零。
// 行数由本组件独立统计（不取分类器的值）：对每个归属文件按块读取并
// 数换行符。结果的键集合与报告的键集合完全一致。
func aggregate(root string, report breakdown) Result {
	var total int64
	for _, entry := range report {
		total += entry.Size
	}
	if total < 1 {
		total = 1
	}

	stats := make(Result, len(report))
	for language, entry := range report {
		var lines int64
		for _, f := range entry.Files {
			lines += countNewlines(filepath.Join(root, f))
		}
		stats[language] = LanguageStat{
			Percent: round2(float64(entry.Size) * 100 / float64(total)),
			Lines:   lines,
		}
	}
	return stats
}

// countNewlines 以二进制方式按 1 MiB 的块统计文件中的换行符
//
// 不整体载入文件，也不做任何解码，因此对二进制内容同样安全。
// 分类器的文件列表偶尔包含无法解析为可读普通文件的条目（符号链接
// 目标、目录、权限不足），这些一律静默按 0 行处理而不是报错。
func countNewlines(path string) int64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer func() {
		_ = f.Close()
	}()

	if info, err := f.Stat(); err != nil || !info.Mode().IsRegular() {
		return 0
	}

	var count int64
	buf := make([]byte, countChunkSize)
	for {
		n, err := f.Read(buf)
		count += int64(bytes.Count(buf[:n], []byte{'\n'}))
		if err != nil {
			if err == io.EOF {
				return count
			}
			return 0
		}
	}
}

// round2 保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
