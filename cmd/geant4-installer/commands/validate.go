package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// validateCmd 验证配置命令
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "验证配置文件",
	Long: `验证配置文件与 GEANT4_* 环境变量合并后的结果。

验证项目:
  • 配置文件语法 (yaml / json / toml)
  • URL 格式
  • 命令名 (viewer、configure_tool、build_tool、sudo)
  • 数值范围 (menu_size、http_timeout、download_retries)

示例:
  geant4-installer validate
  geant4-installer validate --config=./geant4-installer.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// 配置在 PersistentPreRunE 中已加载并验证，失败时不会进入这里
func runValidate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	fmt.Println("✅ 配置验证通过")
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Printf("配置文件: %s\n", used)
	} else {
		fmt.Println("配置文件: 未使用 (默认值与环境变量)")
	}

	fmt.Printf("tags_url:         %s\n", cfg.TagsURL)
	fmt.Printf("archive_base:     %s\n", cfg.ArchiveBase)
	fmt.Printf("work_dir:         %s\n", orDefault(cfg.WorkDir, "<程序目录>/Geant4"))
	fmt.Printf("shell_profile:    %s\n", orDefault(cfg.ShellProfile, "~/.bashrc"))
	fmt.Printf("alias_name:       %s\n", cfg.AliasName)
	fmt.Printf("viewer:           %s\n", cfg.Viewer)
	fmt.Printf("configure_tool:   %s\n", cfg.ConfigureTool)
	fmt.Printf("build_tool:       %s\n", cfg.BuildTool)
	fmt.Printf("sudo:             %s\n", orDefault(cfg.Sudo, "(不使用)"))
	fmt.Printf("menu_size:        %d\n", cfg.MenuSize)
	fmt.Printf("http_timeout:     %s\n", cfg.HTTPTimeout)
	fmt.Printf("download_retries: %d\n", cfg.DownloadRetries)
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
