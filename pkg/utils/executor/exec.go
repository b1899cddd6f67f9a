// Package executor 封装外部命令的执行，统一捕获输出并携带结构化错误信息
// git 与分类器（本地或容器内）都经由本包调用
package executor

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// ExecError 是结构化的命令执行错误
type ExecError struct {
	Cmd    string   // 执行的命令
	Args   []string // 命令参数
	Stderr string   // 捕获的标准错误输出
	Err    error    // 底层错误 (通常是 *exec.ExitError)
}

// Error 实现 error 接口
func (e *ExecError) Error() string {
	code := "unknown"
	if c := e.ExitCode(); c >= 0 {
		code = fmt.Sprintf("%d", c)
	}

	stderr := e.CleanStderr()
	if stderr == "" {
		return fmt.Sprintf("command execution failed: %s %s, exit-code: %s, err: %v",
			e.Cmd, strings.Join(e.Args, " "), code, e.Err)
	}
	return fmt.Sprintf("command execution failed: %s %s, exit-code: %s, err: %v, stderr: %s",
		e.Cmd, strings.Join(e.Args, " "), code, e.Err, stderr)
}

// Unwrap 允许 errors.Is / errors.As 检查底层错误
func (e *ExecError) Unwrap() error {
	return e.Err
}

// ansiRegexp 匹配 ANSI 颜色/格式控制序列
var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// CleanStderr 返回去除 ANSI 控制码并修整空白后的 stderr
func (e *ExecError) CleanStderr() string {
	return strings.TrimSpace(ansiRegexp.ReplaceAllString(e.Stderr, ""))
}

// ExitCode 返回底层进程的退出码，不可用时返回 -1
func (e *ExecError) ExitCode() int {
	if exitErr, ok := e.Err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

// Executor 是一次性的命令执行器，链式配置后通过 Run / Output 执行
type Executor struct {
	cmd *exec.Cmd
}

// NewExecutor 创建一个命令执行器
func NewExecutor(name string, args ...string) *Executor {
	return &Executor{
		cmd: exec.Command(name, args...),
	}
}

// WithDir 设置命令的工作目录
func (e *Executor) WithDir(dir string) *Executor {
	e.cmd.Dir = dir
	return e
}

// WithEnv 在当前进程环境之上附加环境变量
func (e *Executor) WithEnv(envs ...string) *Executor {
	e.cmd.Env = append(e.cmd.Environ(), envs...)
	return e
}

// Run 执行命令，分别返回标准输出和标准错误
// 即使执行失败，stdout 和 stderr 也会返回已捕获的内容
func (e *Executor) Run() (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	e.cmd.Stdout = &outBuf
	e.cmd.Stderr = &errBuf

	runErr := e.cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if runErr != nil {
		err = &ExecError{
			Cmd:    e.cmd.Path,
			Args:   e.cmd.Args[1:],
			Stderr: stderr,
			Err:    runErr,
		}
	}
	return stdout, stderr, err
}

// Output 执行命令并返回其标准输出
func (e *Executor) Output() (string, error) {
	output, err := e.cmd.Output()
	if err != nil {
		execErr := &ExecError{
			Cmd:  e.cmd.Path,
			Args: e.cmd.Args[1:],
			Err:  err,
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			execErr.Stderr = string(exitErr.Stderr)
		}
		return string(output), execErr
	}
	return string(output), nil
}

// CombinedOutput 执行命令并返回合并的标准输出和标准错误
func (e *Executor) CombinedOutput() (string, error) {
	output, err := e.cmd.CombinedOutput()
	if err != nil {
		return string(output), &ExecError{
			Cmd:    e.cmd.Path,
			Args:   e.cmd.Args[1:],
			Stderr: string(output),
			Err:    err,
		}
	}
	return string(output), nil
}
