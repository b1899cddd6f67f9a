// Package configs 提供应用程序配置管理功能
package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/yeisme/zipling/pkg/analyzer"
)

// Config 应用配置结构
type Config struct {
	Version  string         `mapstructure:"version"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	Linguist LinguistConfig `mapstructure:"linguist"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`       // 日志级别: trace, debug, info, warn, error, fatal, panic
	JSON       bool   `mapstructure:"json"`        // 是否使用 JSON 格式输出
	Mode       string `mapstructure:"mode"`        // 输出模式: console, file, both
	FilePath   string `mapstructure:"file_path"`   // 文件路径（当 mode 为 file 或 both 时使用）
	MaxSize    int    `mapstructure:"max_size"`    // 日志文件最大大小（MB）
	MaxBackups int    `mapstructure:"max_backups"` // 保留的备份文件数量
	MaxAge     int    `mapstructure:"max_age"`     // 文件保留天数
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Debug   bool   `mapstructure:"debug"`
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"` // 是否安静模式，禁止所有日志输出
}

// LinguistConfig 外部分类器配置
type LinguistConfig struct {
	Mode        string `mapstructure:"mode"`         // 执行方式: local 或 docker
	Command     string `mapstructure:"command"`      // 本地模式下的分类器命令
	DockerBin   string `mapstructure:"docker_bin"`   // 容器运行时命令
	DockerImage string `mapstructure:"docker_image"` // 分类器镜像
	GitBin      string `mapstructure:"git_bin"`      // git 命令
}

// ToOptions 转换为 analyzer 的执行选项
func (c LinguistConfig) ToOptions() analyzer.Options {
	mode := analyzer.ModeLocal
	if strings.EqualFold(c.Mode, string(analyzer.ModeDocker)) {
		mode = analyzer.ModeDocker
	}
	return analyzer.Options{
		Mode:        mode,
		Command:     c.Command,
		DockerBin:   c.DockerBin,
		DockerImage: c.DockerImage,
		GitBin:      c.GitBin,
	}
}

// setDefaults 设置默认配置值
func setDefaults() {
	viper.SetDefault("version", "1.0")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", false)
	viper.SetDefault("log.mode", "console")
	viper.SetDefault("log.file_path", ".zipling/zipling.log")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age", 28)
	viper.SetDefault("app.name", "zipling")
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.verbose", false)
	viper.SetDefault("app.quiet", false)
	viper.SetDefault("linguist.mode", "local")
	viper.SetDefault("linguist.command", "github-linguist")
	viper.SetDefault("linguist.docker_bin", "docker")
	viper.SetDefault("linguist.docker_image", "linguist")
	viper.SetDefault("linguist.git_bin", "git")
}

var globalConfig *Config

// tryLoadConfigFiles 尝试加载不同格式的配置文件
func tryLoadConfigFiles() bool {
	// 配置文件搜索路径
	searchPaths := []string{
		".",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/zipling",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		searchPaths = append(searchPaths,
			"$USERPROFILE",
			"$APPDATA/zipling",
		)
	} else {
		searchPaths = append(searchPaths, "/etc/zipling")
	}

	configNames := []string{".zipling", "zipling"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					viper.SetConfigFile(configFile)
					return true
				}
			}
		}
	}

	return false
}

// LoadConfig 加载配置文件
// configPath 为空时按搜索路径查找；找不到配置文件不算错误，使用默认值
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		tryLoadConfigFiles()
	}

	viper.SetEnvPrefix("ZIPLING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// 仅当明确指定了配置文件时才把读取失败视为错误
		if configPath != "" {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	globalConfig = &config
	return &config, nil
}

// GetConfig 获取全局配置，未加载时回退到默认值
func GetConfig() *Config {
	if globalConfig == nil {
		config, err := LoadConfig("")
		if err != nil {
			panic(err)
		}
		return config
	}
	return globalConfig
}

// GetConfigSection 返回指定配置节的数据；section 为空时返回全部配置
func GetConfigSection(v *viper.Viper, section string) (any, error) {
	if section == "" {
		return v.AllSettings(), nil
	}
	sub := v.Sub(section)
	if sub == nil {
		return nil, fmt.Errorf("unknown config section %q", section)
	}
	return sub.AllSettings(), nil
}
