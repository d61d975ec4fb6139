// Package installer 根据发行版选择包管理器并安装 Geant4 的构建依赖
package installer

import (
	"errors"

	"github.com/bbq191/geant4-installer/internal/runner"
)

// ErrUnknownDistro 发行版无法识别，跳过依赖安装（非致命）
var ErrUnknownDistro = errors.New("distro not recognized")

// Family 发行版家族
type Family string

const (
	FamilyArch   Family = "arch"
	FamilyDebian Family = "debian"
	FamilySUSE   Family = "opensuse"
	FamilyRHEL   Family = "rhel"
	FamilyFedora Family = "fedora"
)

// PackageManager 包管理器接口
type PackageManager interface {
	// Name 返回包管理器名称
	Name() string

	// InstallCommands 返回安装给定包所需的命令序列
	InstallCommands(sudo string, packages []string) []runner.Command

	// QueryCommand 返回查询单个包是否已安装的命令，退出码 0 表示已安装
	QueryCommand(packageName string) runner.Command
}

// Plan 针对某个发行版的依赖安装方案
type Plan struct {
	Family   Family
	Manager  PackageManager
	Packages []string
}

// Commands 返回完整的安装命令序列
func (p *Plan) Commands(sudo string) []runner.Command {
	return p.Manager.InstallCommands(sudo, p.Packages)
}

// PackageStatus 单个包的安装状态
type PackageStatus struct {
	Name      string
	Installed bool
}
