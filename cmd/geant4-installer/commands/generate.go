package commands

import (
	"fmt"
	"os"

	"github.com/bbq191/geant4-installer/internal/build"
	"github.com/bbq191/geant4-installer/internal/release"
	"github.com/bbq191/geant4-installer/internal/template"
	"github.com/bbq191/geant4-installer/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	genRelease string
	genOutput  string
)

// generateCmd 预览安装过程中生成的文本
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "生成 ccmake 操作说明与别名行",
	Long: `不执行任何安装步骤，仅渲染指定版本的 ccmake 操作说明和将写入
shell 配置文件的别名行。

示例:
  geant4-installer generate --release 11.2.2
  geant4-installer generate --release 11.2.2 --output /tmp/geant4.txt`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genRelease, "release", "r", "", "Geant4 版本")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "操作说明输出文件 (默认输出到终端)")
	generateCmd.Flags().StringVarP(&workDir, "dir", "d", "", "工作目录")
	_ = generateCmd.MarkFlagRequired("release")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := GetLogger()
	cfg := GetConfig()

	version, err := release.Normalize(genRelease)
	if err != nil {
		return err
	}

	root, err := workRoot(workDir)
	if err != nil {
		return err
	}
	layout, err := workspace.New(root, version)
	if err != nil {
		return err
	}

	engine, err := template.NewEngine(logger)
	if err != nil {
		return err
	}

	text, err := engine.Instructions(template.InstructionsContext{
		Version:       layout.Version,
		InstallPath:   layout.InstallDir,
		SourceDir:     layout.SourceDir,
		BuildDir:      layout.BuildDir,
		ConfigureTool: cfg.ConfigureTool,
		Options:       build.DefaultCMakeOptions,
	})
	if err != nil {
		return err
	}

	alias, err := engine.AliasLine(template.AliasContext{Name: cfg.AliasName, EnvScript: layout.EnvScript()})
	if err != nil {
		return err
	}

	if genOutput != "" {
		if err := os.WriteFile(genOutput, []byte(text), 0644); err != nil {
			return fmt.Errorf("写入 %s 失败: %w", genOutput, err)
		}
		logger.Infof("操作说明已写入: %s", genOutput)
	} else {
		fmt.Println(text)
	}

	fmt.Println(alias)
	return nil
}
