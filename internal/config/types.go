// Package config 加载并校验安装器配置
package config

import "time"

// 默认值
const (
	DefaultTagsURL         = "https://gitlab.cern.ch/geant4/geant4/-/tags"
	DefaultArchiveBase     = "https://gitlab.cern.ch/geant4/geant4/-/archive"
	DefaultAliasName       = "geant4make"
	DefaultViewer          = "xdg-open"
	DefaultConfigureTool   = "ccmake"
	DefaultBuildTool       = "make"
	DefaultMenuSize        = 5
	DefaultSudo            = "sudo"
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultDownloadRetries = 3
)

// EnvPrefix 环境变量前缀，如 GEANT4_WORK_DIR
const EnvPrefix = "GEANT4"

// ConfigName 配置文件名（不含扩展名）
const ConfigName = "geant4-installer"

// Config 安装器配置
type Config struct {
	TagsURL     string `mapstructure:"tags_url" validate:"required,url"`
	ArchiveBase string `mapstructure:"archive_base" validate:"required,url"`

	// 空值表示可执行文件所在目录下的 Geant4
	WorkDir string `mapstructure:"work_dir"`
	// 空值表示 ~/.bashrc
	ShellProfile string `mapstructure:"shell_profile"`
	AliasName    string `mapstructure:"alias_name" validate:"required,cmdname"`

	Viewer        string `mapstructure:"viewer" validate:"required,cmdname"`
	ConfigureTool string `mapstructure:"configure_tool" validate:"required,cmdname"`
	BuildTool     string `mapstructure:"build_tool" validate:"required,cmdname"`
	Sudo          string `mapstructure:"sudo" validate:"omitempty,cmdname"`

	MenuSize        int           `mapstructure:"menu_size" validate:"min=1"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout" validate:"gt=0"`
	DownloadRetries int           `mapstructure:"download_retries" validate:"min=0,max=10"`
}
