package analyzer

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"testing"
)

func TestDecodeBreakdown(t *testing.T) {
	report, err := decodeBreakdown(`{
		"Python":     {"size": 250, "files": ["main.py"], "percentage": "25.00"},
		"JavaScript": {"size": 750, "files": ["lib.js"]}
	}`)
	if err != nil {
		t.Fatalf("decodeBreakdown: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("got %d languages, want 2", len(report))
	}
	if entry := report["Python"]; entry.Size != 250 || len(entry.Files) != 1 {
		t.Errorf("Python = %+v", entry)
	}
}

func TestDecodeBreakdown_Malformed(t *testing.T) {
	for _, out := range []string{"", "not json", "[1,2,3]"} {
		if _, err := decodeBreakdown(out); !errors.Is(err, ErrMalformedReport) {
			t.Errorf("decodeBreakdown(%q) err = %v, want ErrMalformedReport", out, err)
		}
	}
}

// 空映射视为工具故障
func TestDecodeBreakdown_Empty(t *testing.T) {
	for _, out := range []string{"{}", "null"} {
		if _, err := decodeBreakdown(out); !errors.Is(err, ErrEmptyReport) {
			t.Errorf("decodeBreakdown(%q) err = %v, want ErrEmptyReport", out, err)
		}
	}
}

func TestDockerRunArgs(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = ModeDocker
	args := dockerRunArgs("/tmp/x", opts)

	for _, want := range []string{
		"run", "--rm",
		"-v", "/tmp/x:/repo:ro",
		"-w", "/repo",
		"linguist",
		"--breakdown", "--json", ".",
	} {
		if !slices.Contains(args, want) {
			t.Errorf("args %v missing %q", args, want)
		}
	}

	// unix 上必须透传调用者的 uid:gid
	if uid := os.Getuid(); uid >= 0 {
		if !slices.Contains(args, "--user") {
			t.Errorf("args %v missing --user", args)
		}
		if !slices.Contains(args, fmt.Sprintf("%d:%d", uid, os.Getgid())) {
			t.Errorf("args %v missing uid:gid", args)
		}
	}

	// 镜像名必须在分类器参数之前
	if slices.Index(args, "linguist") > slices.Index(args, "--breakdown") {
		t.Errorf("image name must precede classifier args: %v", args)
	}
}
