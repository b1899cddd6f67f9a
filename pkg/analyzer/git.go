package analyzer

import (
	"fmt"

	"github.com/yeisme/zipling/pkg/utils/executor"
)

// 合成的提交者身份，仅用于让分类器在已提交的树上工作，不对应任何真实用户
const (
	commitAuthorName  = "linguist"
	commitAuthorEmail = "linguist@example.com"
	commitMessage     = "Initial commit"
)

// initRepo 在项目根目录建立一个一次性的 git 仓库并提交全部文件
//
// 分类器的文件归属启发式在已提交的树上最可靠，这是该步骤存在的唯一
// 原因；提交历史本身没有意义也不会保留。任何失败（包括 git 不存在）
// 都是致命的，不重试也不跳过。
func initRepo(root, gitBin string) error {
	steps := [][]string{
		{"init", "-q"},
		{"add", "-A"},
		{"-c", "user.name=" + commitAuthorName, "-c", "user.email=" + commitAuthorEmail,
			"commit", "-m", commitMessage, "-q"},
	}

	for _, args := range steps {
		exe := executor.NewExecutor(gitBin, args...).WithDir(root)
		if _, _, err := exe.Run(); err != nil {
			return fmt.Errorf("%w: %w", ErrGitBootstrap, err)
		}
	}
	return nil
}
