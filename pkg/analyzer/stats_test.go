package analyzer

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestAggregate_Percentages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", linesOf(10))
	writeFile(t, dir, "lib.js", linesOf(30))

	report := breakdown{
		"Python":     {Size: 250, Files: []string{"main.py"}},
		"JavaScript": {Size: 750, Files: []string{"lib.js"}},
	}

	result := aggregate(dir, report)

	if len(result) != len(report) {
		t.Fatalf("result has %d languages, want %d", len(result), len(report))
	}
	for language := range report {
		if _, ok := result[language]; !ok {
			t.Fatalf("language %q missing from result", language)
		}
	}

	if got := result["Python"]; got.Percent != 25.00 || got.Lines != 10 {
		t.Errorf("Python = %+v, want {25 10}", got)
	}
	if got := result["JavaScript"]; got.Percent != 75.00 || got.Lines != 30 {
		t.Errorf("JavaScript = %+v, want {75 30}", got)
	}

	var sum float64
	for _, stat := range result {
		if stat.Percent < 0 || stat.Percent > 100 {
			t.Errorf("percent %v out of [0,100]", stat.Percent)
		}
		sum += stat.Percent
	}
	if math.Abs(sum-100.00) > 0.01 {
		t.Errorf("percent sum = %v, want 100.00", sum)
	}
}

// 总字节数为 0 时按 1 处理，避免除零
func TestAggregate_ZeroTotal(t *testing.T) {
	dir := t.TempDir()
	result := aggregate(dir, breakdown{"Text": {Size: 0, Files: nil}})

	if got := result["Text"]; got.Percent != 0 || got.Lines != 0 {
		t.Errorf("Text = %+v, want {0 0}", got)
	}
}

// 消失的文件与目录条目静默贡献 0 行
func TestAggregate_UnreadableFilesCountZero(t *testing.T) {
	dir := t.TempDir()
	mkdir(t, dir, "subdir")
	writeFile(t, dir, "real.py", "a\nb\n")

	report := breakdown{
		"Python": {Size: 100, Files: []string{"real.py", "gone.py", "subdir"}},
	}

	result := aggregate(dir, report)
	if got := result["Python"].Lines; got != 2 {
		t.Errorf("lines = %d, want 2 (only the readable regular file)", got)
	}
}

// 行计数与块边界无关：文件大小恰为块大小、±1 字节时结果一致
func TestCountNewlines_ChunkBoundary(t *testing.T) {
	base := make([]byte, countChunkSize)
	newlines := 0
	for i := range base {
		if i%1024 == 0 {
			base[i] = '\n'
			newlines++
		} else {
			base[i] = 'a'
		}
	}

	cases := map[string][]byte{
		"exact":    base,
		"plus157":  append(bytes.Clone(base), bytes.Repeat([]byte{'b'}, 157)...),
		"minusOne": base[:len(base)-1], // 末字节不是换行符
	}

	dir := t.TempDir()
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, content, 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if got := countNewlines(path); got != int64(newlines) {
				t.Errorf("countNewlines = %d, want %d", got, newlines)
			}
		})
	}
}

func TestCountNewlines_Missing(t *testing.T) {
	if got := countNewlines(filepath.Join(t.TempDir(), "nope")); got != 0 {
		t.Errorf("countNewlines = %d, want 0", got)
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		33.333333: 33.33,
		66.666666: 66.67,
		100.0:     100.0,
		0:         0,
	}
	for in, want := range cases {
		if got := round2(in); got != want {
			t.Errorf("round2(%v) = %v, want %v", in, got, want)
		}
	}
}

// linesOf 返回 n 行内容
func linesOf(n int) string {
	var b bytes.Buffer
	for i := 0; i < n; i++ {
		b.WriteString("line\n")
	}
	return b.String()
}
