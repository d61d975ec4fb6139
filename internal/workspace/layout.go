// Package workspace 根据版本号推导所有工作路径
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// ToolDirName 工作目录名
const ToolDirName = "Geant4"

// Layout 一次安装涉及的全部路径，均为绝对路径
type Layout struct {
	Version    string // 不带 v 前缀的版本号
	Root       string // <script_dir>/Geant4
	Tarball    string // <root>/geant4-v<ver>.tar.gz
	SourceDir  string // <root>/geant4-v<ver>
	BuildDir   string // <root>/geant4-v<ver>-build
	InstallDir string // <root>/geant4-v<ver>-install
}

// New 在 root 下为指定版本构造路径
func New(root, version string) (*Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("解析工作目录失败: %w", err)
	}

	base := SourceName(version)
	return &Layout{
		Version:    version,
		Root:       abs,
		Tarball:    filepath.Join(abs, TarballName(version)),
		SourceDir:  filepath.Join(abs, base),
		BuildDir:   filepath.Join(abs, base+"-build"),
		InstallDir: filepath.Join(abs, base+"-install"),
	}, nil
}

// SourceName 源码目录名
func SourceName(version string) string {
	return "geant4-v" + version
}

// TarballName 源码包文件名
func TarballName(version string) string {
	return SourceName(version) + ".tar.gz"
}

// TarballURL 源码包下载地址
func TarballURL(archiveBase, version string) string {
	return fmt.Sprintf("%s/v%s/%s", trimSlash(archiveBase), version, TarballName(version))
}

// EnvScript 安装后用于初始化环境的脚本
func (l *Layout) EnvScript() string {
	return filepath.Join(l.InstallDir, "share", "Geant4", "geant4make", "geant4make.sh")
}

// Ensure 创建工作目录
func (l *Layout) Ensure() error {
	if err := os.MkdirAll(l.Root, 0755); err != nil {
		return fmt.Errorf("创建工作目录失败 %s: %w", l.Root, err)
	}
	return nil
}

// DefaultRoot 返回可执行文件所在目录下的 Geant4 目录
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), ToolDirName), nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
