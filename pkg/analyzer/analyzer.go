// Package analyzer 实现归档语言分析管道：
// 解压 ZIP → 探测项目根目录 → 初始化临时 git 仓库 → 调用外部分类器
// (github-linguist，本地或容器内) → 聚合为各语言的百分比和行数。
//
// 分类算法完全由外部工具提供，本包只负责编排；每次调用使用独立的
// 临时目录，结束时无条件清理，调用之间没有任何共享状态。
package analyzer

import (
	"fmt"
	"os"
)

// Mode 指定分类器的执行方式
type Mode string

const (
	// ModeLocal 直接执行本地的分类器可执行文件
	ModeLocal Mode = "local"
	// ModeDocker 在容器内执行分类器，项目根目录以只读方式挂载
	ModeDocker Mode = "docker"
)

// Options 控制一次分析的外部协作者
// 零值字段会在 Analyze 中回退到 DefaultOptions 的对应值
type Options struct {
	Mode        Mode   `json:"mode"`
	Command     string `json:"command"`      // 本地模式下的分类器可执行文件名
	DockerBin   string `json:"docker_bin"`   // 容器运行时命令
	DockerImage string `json:"docker_image"` // 分类器镜像名
	GitBin      string `json:"git_bin"`      // git 可执行文件名
}

// DefaultOptions 返回默认配置：本地执行 github-linguist
func DefaultOptions() Options {
	return Options{
		Mode:        ModeLocal,
		Command:     "github-linguist",
		DockerBin:   "docker",
		DockerImage: "linguist",
		GitBin:      "git",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Mode == "" {
		o.Mode = def.Mode
	}
	if o.Command == "" {
		o.Command = def.Command
	}
	if o.DockerBin == "" {
		o.DockerBin = def.DockerBin
	}
	if o.DockerImage == "" {
		o.DockerImage = def.DockerImage
	}
	if o.GitBin == "" {
		o.GitBin = def.GitBin
	}
	return o
}

// LanguageStat 是单个语言的最终统计结果
type LanguageStat struct {
	// Percent 该语言字节数占总字节数的百分比，保留两位小数
	Percent float64 `json:"percent"`
	// Lines 该语言全部归属文件的换行符计数
	Lines int64 `json:"lines"`
}

// Result 语言名到统计值的映射
// 键集合与分类器报告的键集合严格一致，不增不减
type Result map[string]LanguageStat

// Analyze 对一个 ZIP 归档执行完整的语言分析管道
//
// archivePath 必须指向已存在的普通文件，否则返回 ErrNotFound，
// 且此时不会创建任何临时目录。整个管道同步阻塞执行，不支持超时
// 与取消；并发调用彼此独立。无论成败，解压目录都会被整体删除。
func Analyze(archivePath string, opts Options) (Result, error) {
	opts = opts.withDefaults()

	info, err := os.Stat(archivePath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, archivePath)
	}

	tmpDir, err := os.MkdirTemp("", "zipling-*")
	if err != nil {
		return nil, fmt.Errorf("create extraction dir: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	if err := extractZip(archivePath, tmpDir); err != nil {
		return nil, err
	}

	root, err := DetectProjectRoot(tmpDir)
	if err != nil {
		return nil, err
	}

	if err := initRepo(root, opts.GitBin); err != nil {
		return nil, err
	}

	report, err := runBreakdown(root, opts)
	if err != nil {
		return nil, err
	}

	return aggregate(root, report), nil
}
