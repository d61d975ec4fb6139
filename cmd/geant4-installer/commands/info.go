package commands

import (
	"errors"
	"fmt"

	"github.com/bbq191/geant4-installer/internal/installer"
	"github.com/bbq191/geant4-installer/internal/platform"
	"github.com/bbq191/geant4-installer/internal/workspace"
	"github.com/spf13/cobra"
)

// infoCmd 显示系统信息命令
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "显示系统、依赖方案与工作目录信息",
	Long: `显示当前系统的详细信息，包括：

• 系统类型、内核版本与发行版
• 将使用的包管理器与依赖包
• 可用的包管理器
• 工作目录与生效的配置

该命令主要用于安装前的诊断。`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVarP(&workDir, "dir", "d", "", "工作目录")
}

func runInfo(cmd *cobra.Command, args []string) error {
	logger := GetLogger()
	cfg := GetConfig()
	logger.Debug("正在检测平台信息...")

	env := platform.NewDetector().Detect()

	printSection("平台信息")
	fmt.Println(env.String())
	fmt.Printf("    Architecture: %s\n", env.Architecture)
	if env.DistroErr != nil {
		fmt.Printf("    发行版检测错误: %v\n", env.DistroErr)
	}
	fmt.Println()

	printSection("依赖方案")
	plan, err := installer.SelectPlan(env.Distro, env.KernelRelease)
	switch {
	case errors.Is(err, installer.ErrUnknownDistro):
		fmt.Println("未识别的发行版，安装时将跳过依赖安装")
	case err != nil:
		return err
	default:
		fmt.Printf("发行版族: %s\n包管理器: %s\n依赖包 (%d): %v\n", plan.Family, plan.Manager.Name(), len(plan.Packages), plan.Packages)
	}

	available := platform.GetAvailablePackageManagers()
	if len(available) > 0 {
		fmt.Printf("可用的包管理器: %v\n", available)
	} else {
		fmt.Println("未检测到任何包管理器")
	}
	fmt.Println()

	printSection("工作目录")
	root, err := workRoot(workDir)
	if err != nil {
		return err
	}
	layout, err := workspace.New(root, "<ver>")
	if err != nil {
		return err
	}
	fmt.Printf("工作目录: %s\n源码包:   %s\n源码目录: %s\n构建目录: %s\n安装目录: %s\n",
		layout.Root, layout.Tarball, layout.SourceDir, layout.BuildDir, layout.InstallDir)
	fmt.Println()

	printSection("配置")
	fmt.Printf("标签页面: %s\n源码地址: %s\n配置工具: %s\n构建工具: %s\n别名: %s\n",
		cfg.TagsURL, cfg.ArchiveBase, cfg.ConfigureTool, cfg.BuildTool, cfg.AliasName)

	return nil
}
