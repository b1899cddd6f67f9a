package analyzer

import "errors"

// 管道中每一步的失败种类，全部快速失败、不重试，由调用方用 errors.Is 区分
// 子进程相关的失败（git / 分类器）可进一步用 errors.As 取出 *executor.ExecError
// 以获得退出码和 stderr
var (
	// ErrNotFound 输入路径不存在或不是普通文件
	ErrNotFound = errors.New("archive not found")

	// ErrDecode 归档不是合法的 ZIP，或解压过程失败
	ErrDecode = errors.New("archive decode failed")

	// ErrGitBootstrap 临时 git 仓库初始化/提交失败
	ErrGitBootstrap = errors.New("git bootstrap failed")

	// ErrClassifier 分类器进程以非零码退出
	ErrClassifier = errors.New("classifier failed")

	// ErrMalformedReport 分类器输出无法解析
	ErrMalformedReport = errors.New("malformed classifier report")

	// ErrEmptyReport 分类器输出可解析但为空映射，视为工具故障而非“未发现语言”
	ErrEmptyReport = errors.New("classifier returned empty result")
)
