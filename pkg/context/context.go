// Package context 把配置、viper 实例与日志记录器捆绑为应用上下文
package context

import (
	"context"

	"github.com/spf13/viper"

	"github.com/yeisme/zipling/pkg/configs"
	"github.com/yeisme/zipling/pkg/utils/log"
)

// ZiplingContext 应用上下文，在根命令初始化后供各子命令使用
type ZiplingContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper    // 底层 viper 实例，config 子命令直接访问
	Logger log.Logger      // 日志记录器
}

// InitZiplingContext 加载配置并初始化日志，构造应用上下文
// 命令行标志（debug/verbose/quiet）覆盖配置文件中的对应项
func InitZiplingContext(configPath string, debug, verbose, quiet bool) (*ZiplingContext, error) {
	ctx := context.Background()

	config, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if debug {
		config.App.Debug = true
	}
	if verbose {
		config.App.Verbose = true
	}
	if quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &ZiplingContext{
		Context: ctx,
		Config:  config,
		Viper:   viper.GetViper(),
		Logger:  logger,
	}, nil
}
