package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/yeisme/zipling/pkg/utils/executor"
)

// 请求按语言细分并以 JSON 输出
var breakdownArgs = []string{"--breakdown", "--json", "."}

// 容器模式下项目根目录的挂载点
const containerRepoPath = "/repo"

// breakdownEntry 分类器报告中单个语言的条目，视为不可信的外部数据
// 报告里的其它字段（如分类器自带的百分比）一概忽略
type breakdownEntry struct {
	Size  int64    `json:"size"`
	Files []string `json:"files"`
}

type breakdown map[string]breakdownEntry

// runBreakdown 执行分类器并返回校验过的报告
func runBreakdown(root string, opts Options) (breakdown, error) {
	stdout, err := executeClassifier(root, opts)
	if err != nil {
		return nil, err
	}
	return decodeBreakdown(stdout)
}

// executeClassifier 按配置的模式运行分类器，返回其标准输出
// 非零退出包装为 ErrClassifier，底层 *executor.ExecError 携带退出码与 stderr
func executeClassifier(root string, opts Options) (string, error) {
	var exe *executor.Executor
	switch opts.Mode {
	case ModeDocker:
		exe = executor.NewExecutor(opts.DockerBin, dockerRunArgs(root, opts)...)
	default:
		exe = executor.NewExecutor(opts.Command, breakdownArgs...).WithDir(root)
	}

	stdout, _, err := exe.Run()
	if err != nil {
		// 双重包装：errors.Is 命中 ErrClassifier，errors.As 仍可取出 *executor.ExecError
		return "", fmt.Errorf("%w: %w", ErrClassifier, err)
	}
	return stdout, nil
}

// dockerRunArgs 构造容器模式的完整参数：
// 项目根目录只读挂载到 /repo，并透传当前用户的 uid:gid，
// 让工具在容器内创建的文件（如果有）不归属特权账号
func dockerRunArgs(root string, opts Options) []string {
	args := []string{"run", "--rm"}
	if uid, gid := os.Getuid(), os.Getgid(); uid >= 0 && gid >= 0 {
		args = append(args, "--user", fmt.Sprintf("%d:%d", uid, gid))
	}
	args = append(args,
		"-v", root+":"+containerRepoPath+":ro",
		"-w", containerRepoPath,
		opts.DockerImage,
	)
	return append(args, breakdownArgs...)
}

// decodeBreakdown 解析分类器输出并校验非空
// 空映射视为工具故障而不是“没有语言”
func decodeBreakdown(out string) (breakdown, error) {
	var report breakdown
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}
	if len(report) == 0 {
		return nil, ErrEmptyReport
	}
	return report, nil
}
