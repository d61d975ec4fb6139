package installer

import (
	"github.com/bbq191/geant4-installer/internal/runner"
)

// elevate 在需要时加上 sudo 前缀
func elevate(sudo, name string, args ...string) runner.Command {
	if sudo == "" {
		return runner.Command{Name: name, Args: args}
	}
	return runner.Command{Name: sudo, Args: append([]string{name}, args...)}
}

// PacmanManager Arch Linux 官方包管理器
type PacmanManager struct{}

func (PacmanManager) Name() string { return "pacman" }

func (PacmanManager) InstallCommands(sudo string, packages []string) []runner.Command {
	args := append([]string{"-Sy", "--noconfirm"}, packages...)
	return []runner.Command{elevate(sudo, "pacman", args...)}
}

func (PacmanManager) QueryCommand(packageName string) runner.Command {
	return runner.Command{Name: "pacman", Args: []string{"-Q", packageName}, Quiet: true}
}

// AptManager Debian 系包管理器，安装前先刷新索引
type AptManager struct{}

func (AptManager) Name() string { return "apt" }

func (AptManager) InstallCommands(sudo string, packages []string) []runner.Command {
	args := append([]string{"install", "-y"}, packages...)
	return []runner.Command{
		elevate(sudo, "apt", "update"),
		elevate(sudo, "apt", args...),
	}
}

func (AptManager) QueryCommand(packageName string) runner.Command {
	return runner.Command{Name: "dpkg", Args: []string{"-s", packageName}, Quiet: true}
}

// ZypperManager openSUSE 包管理器
type ZypperManager struct{}

func (ZypperManager) Name() string { return "zypper" }

func (ZypperManager) InstallCommands(sudo string, packages []string) []runner.Command {
	args := append([]string{"install", "-y"}, packages...)
	return []runner.Command{elevate(sudo, "zypper", args...)}
}

func (ZypperManager) QueryCommand(packageName string) runner.Command {
	return rpmQuery(packageName)
}

// DnfManager RHEL/Fedora 包管理器，Binary 区分 dnf 与 dnf5
type DnfManager struct {
	Binary string
}

func (d DnfManager) Name() string { return d.Binary }

func (d DnfManager) InstallCommands(sudo string, packages []string) []runner.Command {
	args := append([]string{"install", "-y"}, packages...)
	return []runner.Command{elevate(sudo, d.Binary, args...)}
}

func (DnfManager) QueryCommand(packageName string) runner.Command {
	return rpmQuery(packageName)
}

func rpmQuery(packageName string) runner.Command {
	return runner.Command{Name: "rpm", Args: []string{"-q", "--whatprovides", packageName}, Quiet: true}
}
