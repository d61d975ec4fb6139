// Package pipeline 串联检测、选版本、下载、构建与 shell 集成
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/bbq191/geant4-installer/internal/interactive"
	"github.com/bbq191/geant4-installer/internal/platform"
	"github.com/bbq191/geant4-installer/internal/release"
	"github.com/bbq191/geant4-installer/internal/workspace"
	"github.com/sirupsen/logrus"
)

var (
	// ErrAborted 用户在菜单中选择中止，进程以 0 退出
	ErrAborted = interactive.ErrAborted
	// ErrUnsupportedOS 在 Windows 上运行
	ErrUnsupportedOS = errors.New("only Linux or WSL is supported")
)

const defaultMenuSize = 5

// Detector 平台检测
type Detector interface {
	Detect() *platform.Environment
}

// VersionSource 版本列表来源
type VersionSource interface {
	Fetch(ctx context.Context) ([]string, error)
}

// SourceFetcher 获取并解压源码
type SourceFetcher interface {
	Fetch(ctx context.Context, layout *workspace.Layout, asker *interactive.Asker) error
}

// Builder 配置、编译与安装
type Builder interface {
	Run(ctx context.Context, layout *workspace.Layout, env *platform.Environment) error
}

// ProfilePatcher 写入 shell 别名
type ProfilePatcher interface {
	AddAlias(name, envScript string) (string, error)
	Profile() string
}

// Options 流程参数
type Options struct {
	Root      string // 工作目录 <script_dir>/Geant4
	Release   string // 非空时跳过版本菜单
	MenuSize  int
	AliasName string
}

// Pipeline 安装流程
type Pipeline struct {
	Detector Detector
	Versions VersionSource
	Fetcher  SourceFetcher
	Builder  Builder
	Profile  ProfilePatcher
	Asker    *interactive.Asker
	Out      io.Writer
	Logger   *logrus.Logger
	Options  Options
}

// Run 执行完整安装流程
func (p *Pipeline) Run(ctx context.Context) error {
	env := p.Detector.Detect()
	fmt.Fprintf(p.Out, "\n[INFO] Detected Operating System:\n%s\n\n", env)
	if env.DistroErr != nil {
		p.Logger.Debugf("发行版检测失败: %v", env.DistroErr)
	}

	if env.IsWindows() {
		fmt.Fprintln(p.Out, "\n[WARNING] Script only supports Linux or WSL. Windows script is under development.")
		return ErrUnsupportedOS
	}

	version, err := p.resolveVersion(ctx)
	if err != nil {
		return err
	}

	layout, err := workspace.New(p.Options.Root, version)
	if err != nil {
		return err
	}
	p.Logger.Infof("工作目录: %s", layout.Root)

	if err := p.Fetcher.Fetch(ctx, layout, p.Asker); err != nil {
		return p.aborted(err)
	}

	if err := p.Builder.Run(ctx, layout, env); err != nil {
		return p.aborted(err)
	}

	if _, err := p.Profile.AddAlias(p.Options.AliasName, layout.EnvScript()); err != nil {
		return err
	}

	profile := filepath.Base(p.Profile.Profile())
	fmt.Fprintf(p.Out, "\n[INFO] Added alias to %s. Run 'source ~/%s' to activate it.\n", profile, profile)
	fmt.Fprintf(p.Out, "[SUCCESS] Geant4 v%s installed successfully!\n", version)
	return nil
}

func (p *Pipeline) resolveVersion(ctx context.Context) (string, error) {
	versions, err := p.Versions.Fetch(ctx)
	if errors.Is(err, release.ErrNoVersions) {
		fmt.Fprintln(p.Out, "[ERROR] Could not detect Geant4 versions.")
	}
	if err != nil {
		return "", err
	}

	if p.Options.Release != "" {
		version, ok := release.Lookup(versions, p.Options.Release)
		if !ok {
			return "", fmt.Errorf("版本 %s 不在可用版本列表中", p.Options.Release)
		}
		p.Logger.Infof("使用指定版本 v%s", version)
		return version, nil
	}

	size := p.Options.MenuSize
	if size <= 0 {
		size = defaultMenuSize
	}

	fmt.Fprintln(p.Out, "Available Geant4 versions:")
	if !p.Asker.RendersOptions() {
		for _, c := range release.Menu(versions, size) {
			fmt.Fprintf(p.Out, "  %s\n", c)
		}
	}
	return release.Choose(p.Asker, versions, size)
}

func (p *Pipeline) aborted(err error) error {
	if errors.Is(err, ErrAborted) {
		fmt.Fprintln(p.Out, "[INFO] Aborting.")
	}
	return err
}
