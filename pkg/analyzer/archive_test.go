package analyzer

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// buildZip 在临时目录生成一个 ZIP 归档，entries 为归档内路径到内容的映射
func buildZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}

	path := filepath.Join(t.TempDir(), "archive.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}
	return path
}

func TestExtractZip_RoundTrip(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"project/main.py":     "print('hi')\n",
		"project/sub/util.py": "pass\n",
	})

	dst := t.TempDir()
	if err := extractZip(archive, dst); err != nil {
		t.Fatalf("extractZip: %v", err)
	}

	for path, want := range map[string]string{
		"project/main.py":     "print('hi')\n",
		"project/sub/util.py": "pass\n",
	} {
		data, err := os.ReadFile(filepath.Join(dst, path))
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", path, data, want)
		}
	}
}

func TestExtractZip_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zip")
	if err := os.WriteFile(path, []byte("this is not a zip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := extractZip(path, t.TempDir())
	if !errors.Is(err, ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}
}

// 逃逸出目标目录的条目必须被拒绝
func TestExtractZip_PathEscape(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"../evil.txt": "boom\n",
	})

	err := extractZip(archive, t.TempDir())
	if !errors.Is(err, ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}
}
