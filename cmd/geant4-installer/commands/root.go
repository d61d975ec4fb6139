package commands

import (
	"fmt"
	"os"

	"github.com/bbq191/geant4-installer/internal/config"
	"github.com/bbq191/geant4-installer/internal/interactive"
	"github.com/bbq191/geant4-installer/internal/workspace"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	verbose    bool
	rootLogger *logrus.Logger
	appConfig  *config.Config
)

// rootCmd 是应用的根命令
var rootCmd = &cobra.Command{
	Use:   "geant4-installer",
	Short: "从源码构建并安装 Geant4",
	Long: `在 Linux 与 WSL 上从源码构建 Geant4 的安装向导。

流程：
  • 检测系统与发行版
  • 选择 Geant4 版本
  • 安装编译依赖
  • 下载并解压源码
  • 通过 ccmake 配置后编译安装
  • 在 shell 配置文件中写入 geant4make 别名`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger()
		return initConfig()
	},
}

// Execute 执行根命令
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// 全局参数
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "详细输出")

	// 绑定到 viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig 读取配置文件与 GEANT4_* 环境变量
func initConfig() error {
	used, err := config.ReadFile(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	if used != "" {
		rootLogger.Debugf("使用配置文件: %s", used)
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

// initLogger 初始化日志系统
func initLogger() {
	rootLogger = logrus.New()

	// 设置日志级别
	if verbose || viper.GetBool("verbose") {
		rootLogger.SetLevel(logrus.DebugLevel)
	} else {
		rootLogger.SetLevel(logrus.InfoLevel)
	}

	// 设置日志格式
	rootLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05",
	})

	rootLogger.Debug("日志系统初始化完成")
}

// GetLogger 获取日志实例
func GetLogger() *logrus.Logger {
	return rootLogger
}

// GetConfig 获取已加载的配置
func GetConfig() *config.Config {
	return appConfig
}

// workRoot 工作目录优先级：--dir > work_dir 配置 > 可执行文件目录下的 Geant4
func workRoot(dirFlag string) (string, error) {
	if dirFlag != "" {
		return dirFlag, nil
	}
	if appConfig.WorkDir != "" {
		return appConfig.WorkDir, nil
	}
	return workspace.DefaultRoot()
}

// newAsker 创建终端交互实例
func newAsker() *interactive.Asker {
	if !interactive.IsEnabled() {
		rootLogger.Warn("当前不是交互式终端，提示可能无法正常显示")
	}
	return interactive.NewAsker(interactive.NewSurveyPrompter(), os.Stdout)
}

// printSection 输出带标题的段落
func printSection(title string) {
	fmt.Printf("=== %s ===\n", title)
}
