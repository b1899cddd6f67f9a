package analyzer

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extractZip 将 src 指向的 ZIP 归档完整解压到 dst 目录
// 任何打开/条目级错误都包装为 ErrDecode，不返回部分结果
func extractZip(src, dst string) error {
	reader, err := zip.OpenReader(filepath.Clean(src))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer func() {
		_ = reader.Close()
	}()

	for _, entry := range reader.File {
		if err := extractEntry(entry, dst); err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}
	return nil
}

// extractEntry 解压单个条目，拒绝逃逸出 dst 的路径
func extractEntry(entry *zip.File, dst string) error {
	target := filepath.Join(dst, filepath.Clean(entry.Name))
	if !strings.HasPrefix(target, filepath.Clean(dst)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal entry path %q", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer func() {
		_ = rc.Close()
	}()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode().Perm()|0o600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
