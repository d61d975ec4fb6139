// Package build 驱动 ccmake 配置、编译与安装
package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bbq191/geant4-installer/internal/interactive"
	"github.com/bbq191/geant4-installer/internal/platform"
	"github.com/bbq191/geant4-installer/internal/runner"
	"github.com/bbq191/geant4-installer/internal/template"
	"github.com/bbq191/geant4-installer/internal/workspace"
	"github.com/sirupsen/logrus"
)

// DefaultCMakeOptions 操作说明中建议开启的选项
var DefaultCMakeOptions = []string{
	"GEANT4_INSTALL_DATA",
	"GEANT4_USE_OPENGL_X11",
	"GEANT4_USE_QT",
	"GEANT4_USE_RAYTRACER_X11",
}

// DependencyInstaller 依赖安装步骤
type DependencyInstaller interface {
	Install(ctx context.Context, distro, kernelRelease string) error
}

// Options 构建参数
type Options struct {
	ConfigureTool string // ccmake
	BuildTool     string // make
	Viewer        string // 打开操作说明的程序，xdg-open
	Jobs          int    // >0 时不再询问核心数
	SkipDeps      bool
	CMakeOptions  []string
	TempDir       string // 操作说明文件所在目录，空表示系统临时目录
}

// Director 构建流程
type Director struct {
	runner runner.Runner
	deps   DependencyInstaller
	engine *template.Engine
	asker  *interactive.Asker
	out    io.Writer
	logger *logrus.Logger
	opts   Options
}

// NewDirector 创建构建流程
func NewDirector(r runner.Runner, deps DependencyInstaller, engine *template.Engine,
	asker *interactive.Asker, out io.Writer, opts Options, logger *logrus.Logger) *Director {
	if opts.ConfigureTool == "" {
		opts.ConfigureTool = "ccmake"
	}
	if opts.BuildTool == "" {
		opts.BuildTool = "make"
	}
	if opts.Viewer == "" {
		opts.Viewer = "xdg-open"
	}
	if len(opts.CMakeOptions) == 0 {
		opts.CMakeOptions = DefaultCMakeOptions
	}

	return &Director{
		runner: r,
		deps:   deps,
		engine: engine,
		asker:  asker,
		out:    out,
		logger: logger,
		opts:   opts,
	}
}

// Run 依次执行：准备构建目录、安装依赖、展示说明、配置、编译、安装
func (d *Director) Run(ctx context.Context, layout *workspace.Layout, env *platform.Environment) error {
	if err := d.PrepareDir(layout.BuildDir); err != nil {
		return err
	}

	if d.opts.SkipDeps {
		d.logger.Warn("已跳过依赖安装")
	} else if err := d.deps.Install(ctx, env.Distro, env.KernelRelease); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "[INFO] Install path: %s\n\n", layout.InstallDir)

	if err := d.showInstructions(ctx, layout); err != nil {
		return err
	}

	if err := d.asker.WaitEnter("Press Enter to open the CMake configuration..."); err != nil {
		return err
	}
	if err := d.runner.Run(ctx, runner.Command{
		Name:        d.opts.ConfigureTool,
		Args:        []string{filepath.Join("..", workspace.SourceName(layout.Version))},
		Dir:         layout.BuildDir,
		Description: "Running CMake",
	}); err != nil {
		return fmt.Errorf("CMake 配置失败: %w", err)
	}
	if err := d.asker.WaitEnter("Press Enter after completing configuration in CMake..."); err != nil {
		return err
	}

	jobs := d.opts.Jobs
	if jobs <= 0 {
		n, err := d.asker.PositiveInt("Enter the number of CPU cores for compilation:")
		if err != nil {
			return err
		}
		jobs = n
	}

	steps := []runner.Command{
		{Name: d.opts.BuildTool, Args: []string{"-j" + strconv.Itoa(jobs)}, Description: "Compiling Geant4"},
		{Name: d.opts.BuildTool, Args: []string{"install"}, Description: "Installing Geant4"},
	}
	for _, step := range steps {
		step.Dir = layout.BuildDir
		if err := d.runner.Run(ctx, step); err != nil {
			return fmt.Errorf("%s 失败: %w", step.Description, err)
		}
	}
	return nil
}

// showInstructions 渲染操作说明，写入临时文件并用查看器打开，同时输出到终端
func (d *Director) showInstructions(ctx context.Context, layout *workspace.Layout) error {
	text, err := d.engine.Instructions(template.InstructionsContext{
		Version:       layout.Version,
		InstallPath:   layout.InstallDir,
		SourceDir:     layout.SourceDir,
		BuildDir:      layout.BuildDir,
		ConfigureTool: d.opts.ConfigureTool,
		Options:       d.opts.CMakeOptions,
	})
	if err != nil {
		return err
	}

	path, err := writeTemp(d.opts.TempDir, text)
	if err != nil {
		return err
	}
	d.logger.Debugf("操作说明已写入: %s", path)

	fmt.Fprintln(d.out, text)

	if err := d.runner.Run(ctx, runner.Command{
		Name:        d.opts.Viewer,
		Args:        []string{path},
		Description: "Opening CMake Instructions",
	}); err != nil {
		return fmt.Errorf("打开操作说明失败: %w", err)
	}
	return nil
}

func writeTemp(dir, content string) (string, error) {
	f, err := os.CreateTemp(dir, "geant4-instructions-*.txt")
	if err != nil {
		return "", fmt.Errorf("创建临时文件失败: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", fmt.Errorf("写入操作说明失败: %w", err)
	}
	return f.Name(), f.Close()
}
