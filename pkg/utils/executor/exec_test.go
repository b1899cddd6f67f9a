package executor

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// 测试基础命令执行
func TestExecutor_Run(t *testing.T) {
	e := NewExecutor("echo", "hello world")
	stdout, stderr, err := e.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(stdout, "hello world") {
		t.Errorf("stdout should contain 'hello world', got: %q", stdout)
	}
	if stderr != "" {
		t.Errorf("stderr should be empty, got: %q", stderr)
	}
}

// 测试 Output 方法
func TestExecutor_Output(t *testing.T) {
	e := NewExecutor("echo", "foo bar")
	out, err := e.Output()
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if !strings.Contains(out, "foo bar") {
		t.Errorf("output should contain 'foo bar', got: %q", out)
	}
}

// 测试 WithDir
func TestExecutor_WithDir(t *testing.T) {
	dir := t.TempDir()
	var e *Executor
	if runtime.GOOS == "windows" {
		e = NewExecutor("cmd", "/c", "cd")
	} else {
		e = NewExecutor("pwd")
	}
	e.WithDir(dir)
	stdout, _, err := e.Run()
	if err != nil {
		t.Fatalf("Run with dir failed: %v", err)
	}
	got := strings.TrimSpace(stdout)
	want, _ := filepath.Abs(dir)
	if !strings.EqualFold(got, want) {
		t.Errorf("expected working directory to be %q, got %q", want, got)
	}
}

// 失败的命令必须携带退出码与捕获的 stderr
func TestExecutor_RunFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	e := NewExecutor("sh", "-c", "echo oops >&2; exit 7")
	_, stderr, err := e.Run()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(stderr, "oops") {
		t.Errorf("stderr = %q, should contain 'oops'", stderr)
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("err %v is not *ExecError", err)
	}
	if execErr.ExitCode() != 7 {
		t.Errorf("exit code = %d, want 7", execErr.ExitCode())
	}
	if !strings.Contains(execErr.Error(), "exit-code: 7") {
		t.Errorf("Error() = %q, should mention exit code", execErr.Error())
	}
}

// CleanStderr 去除 ANSI 控制码
func TestExecError_CleanStderr(t *testing.T) {
	e := &ExecError{Stderr: "\x1b[31mred error\x1b[0m\n"}
	if got := e.CleanStderr(); got != "red error" {
		t.Errorf("CleanStderr = %q, want %q", got, "red error")
	}
}
