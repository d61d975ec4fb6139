package platform

import (
	"runtime"
	"strings"
)

// Detector 平台检测器
type Detector struct {
	goos          string
	kernelRelease func() (string, error)
	lsbRelease    func() (string, error)
	osReleasePath string
}

// NewDetector 创建新的平台检测器
func NewDetector() *Detector {
	return &Detector{
		goos:          runtime.GOOS,
		kernelRelease: KernelRelease,
		lsbRelease:    lsbReleaseDescription,
		osReleasePath: "/etc/os-release",
	}
}

// Detect 检测当前平台，不会失败：检测错误降级为 Unknown 并保留在 DistroErr 中
func (d *Detector) Detect() *Environment {
	env := &Environment{
		GOOS:         d.goos,
		Architecture: runtime.GOARCH,
	}

	if release, err := d.kernelRelease(); err == nil {
		env.KernelRelease = strings.TrimSpace(release)
	}

	env.OS = classify(d.goos, env.KernelRelease)
	if env.OS == OSWSL {
		env.WSLVersion = wslVersion(env.KernelRelease)
	}

	if d.goos == "linux" {
		env.Distro, env.DistroErr = d.detectDistro()
	} else {
		env.Distro = DistroNotApplicable
	}

	return env
}

// classify 根据 GOOS 与内核版本判断系统类型
func classify(goos, kernelRelease string) OSType {
	switch {
	case goos == "windows":
		return OSWindows
	case isWSLKernel(kernelRelease):
		return OSWSL
	default:
		return OSLinux
	}
}
