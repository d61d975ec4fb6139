package installer

import (
	"strings"
)

var (
	archPackages = []string{
		"cmake", "gcc", "binutils", "glew", "libjpeg-turbo", "libpng", "libtiff", "giflib",
		"libxml2", "openssl", "fftw", "qt5-base", "qt5-tools", "mesa", "glu", "libxmu",
	}

	debianPackages = []string{
		"cmake", "cmake-curses-gui", "g++", "gcc", "binutils", "libx11-dev", "libxpm-dev",
		"libxft-dev", "libxext-dev", "libglew-dev", "libjpeg-dev", "libpng-dev", "libtiff-dev",
		"libgif-dev", "libxml2-dev", "libssl-dev", "libfftw3-dev", "qtbase5-dev", "qtchooser",
		"qttools5-dev-tools", "libgl1-mesa-dev", "libglu1-mesa-dev", "libxmu-dev",
	}

	susePackages = []string{
		"cmake", "gcc", "gcc-c++", "libX11-devel", "libXpm-devel", "libXft-devel", "libXext-devel",
		"glew-devel", "libjpeg-devel", "libpng-devel", "libtiff-devel", "giflib-devel",
		"libxml2-devel", "libopenssl-devel", "fftw3-devel", "libqt5-qtbase-devel",
		"Mesa-libGL-devel", "Mesa-libGLU-devel", "libXmu-devel",
	}

	rhelPackages = []string{
		"cmake", "gcc", "gcc-c++", "binutils", "libX11-devel", "libXpm-devel", "libXft-devel",
		"libXext-devel", "glew-devel", "libjpeg-turbo-devel", "libpng-devel", "libtiff-devel",
		"giflib-devel", "libxml2-devel", "openssl-devel", "fftw-devel", "qt5-qtbase-devel",
		"qt5-qttools-devel", "mesa-libGL-devel", "mesa-libGLU-devel", "libXmu-devel",
	}

	fedoraPackages = []string{
		"cmake", "gcc", "gcc-c++", "binutils", "qt5-qtbase-devel", "qt5-qttools-devel",
		"mesa-libGL-devel", "mesa-libGLU-devel", "libXmu-devel",
	}
)

// SelectPlan 按发行版名称（大小写不敏感的子串匹配）选择安装方案
//
// 匹配顺序固定：Arch、Ubuntu/Debian/Mint、openSUSE、Rocky/RHEL、Fedora。
// Fedora 在内核版本以 "41" 开头时使用 dnf5。
func SelectPlan(distro, kernelRelease string) (*Plan, error) {
	name := strings.ToLower(distro)

	switch {
	case strings.Contains(name, "arch"):
		return &Plan{Family: FamilyArch, Manager: PacmanManager{}, Packages: archPackages}, nil
	case containsAny(name, "ubuntu", "debian", "mint"):
		return &Plan{Family: FamilyDebian, Manager: AptManager{}, Packages: debianPackages}, nil
	case strings.Contains(name, "opensuse"):
		return &Plan{Family: FamilySUSE, Manager: ZypperManager{}, Packages: susePackages}, nil
	case containsAny(name, "rocky", "rhel"):
		return &Plan{Family: FamilyRHEL, Manager: DnfManager{Binary: "dnf"}, Packages: rhelPackages}, nil
	case strings.Contains(name, "fedora"):
		binary := "dnf"
		if strings.HasPrefix(kernelRelease, "41") {
			binary = "dnf5"
		}
		return &Plan{Family: FamilyFedora, Manager: DnfManager{Binary: binary}, Packages: fedoraPackages}, nil
	}

	return nil, ErrUnknownDistro
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
