package analyzer

import (
	"os"
	"path/filepath"
	"testing"
)

// helper to write file
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func mkdir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return path
}

// 单一子目录且无顶层文件时应剥掉外壳目录
func TestDetectProjectRoot_SingleWrapper(t *testing.T) {
	dir := t.TempDir()
	wrapper := mkdir(t, dir, "project")
	writeFile(t, wrapper, "main.py", "print('hi')\n")

	root, err := DetectProjectRoot(dir)
	if err != nil {
		t.Fatalf("DetectProjectRoot: %v", err)
	}
	if root != wrapper {
		t.Errorf("root = %q, want %q", root, wrapper)
	}
}

// __MACOSX 元数据目录不参与判定
func TestDetectProjectRoot_IgnoresMacMetadata(t *testing.T) {
	dir := t.TempDir()
	wrapper := mkdir(t, dir, "project")
	mkdir(t, dir, "__MACOSX")

	root, err := DetectProjectRoot(dir)
	if err != nil {
		t.Fatalf("DetectProjectRoot: %v", err)
	}
	if root != wrapper {
		t.Errorf("root = %q, want %q", root, wrapper)
	}
}

// 顶层存在文件或多个子目录时使用解压目录本身
func TestDetectProjectRoot_NoUnwrap(t *testing.T) {
	cases := map[string]func(t *testing.T, dir string){
		"loose file": func(t *testing.T, dir string) {
			mkdir(t, dir, "project")
			writeFile(t, dir, "README.md", "# hi\n")
		},
		"two dirs": func(t *testing.T, dir string) {
			mkdir(t, dir, "a")
			mkdir(t, dir, "b")
		},
		"empty": func(_ *testing.T, _ string) {},
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			setup(t, dir)

			root, err := DetectProjectRoot(dir)
			if err != nil {
				t.Fatalf("DetectProjectRoot: %v", err)
			}
			if root != dir {
				t.Errorf("root = %q, want extraction dir %q", root, dir)
			}
		})
	}
}

// 只向下剥一层：双重包裹的归档不递归展开
func TestDetectProjectRoot_SingleLevelOnly(t *testing.T) {
	dir := t.TempDir()
	outer := mkdir(t, dir, "outer")
	mkdir(t, outer, "inner")

	root, err := DetectProjectRoot(dir)
	if err != nil {
		t.Fatalf("DetectProjectRoot: %v", err)
	}
	if root != outer {
		t.Errorf("root = %q, want first-level wrapper %q", root, outer)
	}
}
