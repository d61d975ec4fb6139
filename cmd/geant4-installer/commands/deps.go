package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/bbq191/geant4-installer/internal/installer"
	"github.com/bbq191/geant4-installer/internal/platform"
	"github.com/bbq191/geant4-installer/internal/runner"
	"github.com/spf13/cobra"
)

var (
	checkWorkers int
	checkQuiet   bool
)

// depsCmd 显示依赖安装方案
var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "显示当前发行版的依赖安装命令",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := currentPlan()
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s):\n", plan.Family, plan.Manager.Name())
		for _, c := range plan.Commands(GetConfig().Sudo) {
			fmt.Printf("  %s\n", c)
		}
		return nil
	},
}

// depsCheckCmd 检查缺失的依赖
var depsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "并发检查依赖包是否已安装",
	Long: `逐个查询包数据库 (pacman -Q / dpkg -s / rpm -q)，列出尚未安装的依赖。

示例:
  geant4-installer deps check
  geant4-installer deps check --workers 4 --quiet`,
	RunE: runDepsCheck,
}

func init() {
	rootCmd.AddCommand(depsCmd)
	depsCmd.AddCommand(depsCheckCmd)

	depsCheckCmd.Flags().IntVarP(&checkWorkers, "workers", "w", 0, "最大并发数 (0=CPU核心数)")
	depsCheckCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "静默模式，不显示进度条")
}

func currentPlan() (*installer.Plan, error) {
	env := platform.NewDetector().Detect()
	plan, err := installer.SelectPlan(env.Distro, env.KernelRelease)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, env.Distro)
	}
	return plan, nil
}

func runDepsCheck(cmd *cobra.Command, args []string) error {
	logger := GetLogger()

	plan, err := currentPlan()
	if err != nil {
		return err
	}

	checker := installer.NewChecker(runner.NewExecRunner(logger), checkWorkers, logger)
	if !checkQuiet {
		checker = checker.WithProgress(os.Stderr)
	}

	statuses, err := checker.Check(cmd.Context(), plan)
	if err != nil {
		return err
	}

	missing := installer.Missing(statuses)
	if len(missing) == 0 {
		fmt.Printf("✅ 全部 %d 个依赖已安装\n", len(statuses))
		return nil
	}

	fmt.Printf("缺少 %d/%d 个依赖:\n  %s\n", len(missing), len(statuses), strings.Join(missing, "\n  "))
	return nil
}
