package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// SetDefaults 写入全部默认值，使环境变量对每个键都生效
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tags_url", DefaultTagsURL)
	v.SetDefault("archive_base", DefaultArchiveBase)
	v.SetDefault("work_dir", "")
	v.SetDefault("shell_profile", "")
	v.SetDefault("alias_name", DefaultAliasName)
	v.SetDefault("viewer", DefaultViewer)
	v.SetDefault("configure_tool", DefaultConfigureTool)
	v.SetDefault("build_tool", DefaultBuildTool)
	v.SetDefault("sudo", DefaultSudo)
	v.SetDefault("menu_size", DefaultMenuSize)
	v.SetDefault("http_timeout", DefaultHTTPTimeout)
	v.SetDefault("download_retries", DefaultDownloadRetries)
}

// ReadFile 读取配置文件
//
// path 为空时在 $HOME、当前目录和 ./configs 中搜索 geant4-installer.{yaml,json,toml}，
// 找不到文件不算错误。返回实际使用的文件路径。
func ReadFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.SetConfigName(ConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("读取配置文件失败: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load 合并默认值、配置文件与环境变量并校验
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	cfg.WorkDir = expandPath(cfg.WorkDir)
	cfg.ShellProfile = expandPath(cfg.ShellProfile)

	if err := NewValidator().Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// expandPath 展开环境变量和开头的 ~
func expandPath(path string) string {
	if path == "" {
		return path
	}
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}
