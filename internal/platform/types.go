package platform

import "fmt"

// OSType 主机操作系统分类
type OSType string

const (
	OSWindows OSType = "Windows"
	OSWSL     OSType = "WSL"
	OSLinux   OSType = "Linux"
)

const (
	// DistroUnknown 发行版检测失败时的占位值
	DistroUnknown = "Unknown"
	// DistroNotApplicable 非 Linux 系统时的占位值
	DistroNotApplicable = "N/A"
)

// Environment 检测到的主机环境
type Environment struct {
	OS            OSType // 操作系统分类
	GOOS          string // runtime.GOOS
	Architecture  string // 系统架构
	KernelRelease string // 内核版本字符串
	Distro        string // 发行版显示名称
	DistroErr     error  // 发行版检测失败的原始错误，成功时为 nil
	WSLVersion    string // WSL 版本 (1 或 2)，非 WSL 时为空
}

// DistroDetected 发行版是否被成功识别
func (e *Environment) DistroDetected() bool {
	return e.DistroErr == nil && e.Distro != DistroUnknown && e.Distro != DistroNotApplicable
}

// IsWindows 检查是否为原生 Windows
func (e *Environment) IsWindows() bool {
	return e.OS == OSWindows
}

// IsWSLEnvironment 检查是否在 WSL 环境中
func (e *Environment) IsWSLEnvironment() bool {
	return e.OS == OSWSL
}

// String 返回环境信息的字符串表示
func (e *Environment) String() string {
	kernel := e.KernelRelease
	if kernel == "" {
		kernel = "unknown"
	}
	str := fmt.Sprintf("    OS Type: %s\n    Kernel Version: %s\n    Distro Info: %s", e.OS, kernel, e.Distro)
	if e.WSLVersion != "" {
		str += fmt.Sprintf("\n    WSL Version: %s", e.WSLVersion)
	}
	return str
}
