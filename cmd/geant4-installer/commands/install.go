package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/bbq191/geant4-installer/internal/build"
	"github.com/bbq191/geant4-installer/internal/fetcher"
	"github.com/bbq191/geant4-installer/internal/installer"
	"github.com/bbq191/geant4-installer/internal/pipeline"
	"github.com/bbq191/geant4-installer/internal/platform"
	"github.com/bbq191/geant4-installer/internal/release"
	"github.com/bbq191/geant4-installer/internal/runner"
	"github.com/bbq191/geant4-installer/internal/shellrc"
	"github.com/bbq191/geant4-installer/internal/template"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	releaseFlag string
	jobs        int
	skipDeps    bool
	workDir     string
)

// installCmd 完整安装流程
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "下载、配置、编译并安装 Geant4",
	Long: `执行完整的安装流程：检测系统、选择版本、安装依赖、下载源码、
通过 ccmake 配置、编译安装，最后写入 shell 别名。

不带子命令运行 geant4-installer 等同于 install。

示例:
  geant4-installer                               # 同 install
  geant4-installer install                       # 交互式选择版本
  geant4-installer install --release 11.2.2      # 指定版本
  geant4-installer install --jobs 8 --skip-deps  # 8 核编译，跳过依赖安装
  geant4-installer install --dir ~/hep/Geant4    # 指定工作目录`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	// 不带子命令时执行安装
	rootCmd.RunE = runInstall
	rootCmd.Args = cobra.NoArgs

	addInstallFlags(rootCmd.Flags())
	addInstallFlags(installCmd.Flags())
}

func addInstallFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&releaseFlag, "release", "r", "", "要安装的版本，如 11.2.2")
	flags.IntVarP(&jobs, "jobs", "j", 0, "编译并行数 (0=运行时询问)")
	flags.BoolVar(&skipDeps, "skip-deps", false, "跳过系统依赖安装")
	flags.StringVarP(&workDir, "dir", "d", "", "工作目录 (默认为程序所在目录下的 Geant4)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	logger := GetLogger()
	cfg := GetConfig()

	root, err := workRoot(workDir)
	if err != nil {
		return err
	}

	engine, err := template.NewEngine(logger)
	if err != nil {
		return err
	}

	patcher, err := shellrc.NewPatcher(cfg.ShellProfile, engine, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exec := runner.NewExecRunner(logger)
	asker := newAsker()

	p := &pipeline.Pipeline{
		Detector: platform.NewDetector(),
		Versions: release.NewResolver(cfg.TagsURL, cfg.HTTPTimeout, logger),
		Fetcher: fetcher.NewFetcher(fetcher.Options{
			ArchiveBase: cfg.ArchiveBase,
			Retries:     cfg.DownloadRetries,
		}, logger),
		Builder: build.NewDirector(exec, installer.NewInstaller(exec, cfg.Sudo, logger), engine, asker, os.Stdout, build.Options{
			ConfigureTool: cfg.ConfigureTool,
			BuildTool:     cfg.BuildTool,
			Viewer:        cfg.Viewer,
			Jobs:          jobs,
			SkipDeps:      skipDeps,
		}, logger),
		Profile: patcher,
		Asker:   asker,
		Out:     os.Stdout,
		Logger:  logger,
		Options: pipeline.Options{
			Root:      root,
			Release:   releaseFlag,
			MenuSize:  cfg.MenuSize,
			AliasName: cfg.AliasName,
		},
	}

	return p.Run(ctx)
}
