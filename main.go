// main.go 是 zipling 的程序入口
// 业务逻辑保持在 cmd/pkg 目录中，便于测试和扩展
package main

import (
	"github.com/yeisme/zipling/cmd"
)

func main() {
	cmd.Execute()
}
