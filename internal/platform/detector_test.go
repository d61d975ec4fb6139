package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func fixedRelease(release string) func() (string, error) {
	return func() (string, error) { return release, nil }
}

func failing(msg string) func() (string, error) {
	return func() (string, error) { return "", errors.New(msg) }
}

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入 os-release 失败: %v", err)
	}
	return path
}

// TestDetect_Windows 测试 Windows 检测
func TestDetect_Windows(t *testing.T) {
	d := &Detector{
		goos:          "windows",
		kernelRelease: failing("no uname"),
		lsbRelease:    failing("unused"),
	}

	env := d.Detect()
	if env.OS != OSWindows {
		t.Errorf("期望 Windows，实际为 %s", env.OS)
	}
	if env.Distro != DistroNotApplicable {
		t.Errorf("非 Linux 系统发行版应为 N/A，实际为 %s", env.Distro)
	}
	if !env.IsWindows() {
		t.Error("IsWindows 应返回 true")
	}
}

// TestDetect_WSL 测试 WSL 内核识别（大小写不敏感）
func TestDetect_WSL(t *testing.T) {
	tests := []struct {
		release string
		wsl     bool
		version string
	}{
		{"5.15.153.1-microsoft-standard-WSL2", true, "2"},
		{"4.4.0-19041-Microsoft", true, "1"},
		{"6.8.0-45-generic", false, ""},
	}

	for _, tt := range tests {
		d := &Detector{
			goos:          "linux",
			kernelRelease: fixedRelease(tt.release),
			lsbRelease:    fixedRelease("Ubuntu 22.04.4 LTS"),
		}
		env := d.Detect()

		if env.IsWSLEnvironment() != tt.wsl {
			t.Errorf("%s: 期望 WSL=%v，实际为 %v", tt.release, tt.wsl, env.IsWSLEnvironment())
		}
		if env.WSLVersion != tt.version {
			t.Errorf("%s: 期望 WSL 版本 '%s'，实际为 '%s'", tt.release, tt.version, env.WSLVersion)
		}
		if !tt.wsl && env.OS != OSLinux {
			t.Errorf("%s: 期望 Linux，实际为 %s", tt.release, env.OS)
		}
	}
}

// TestDetect_LSBPreferred 测试优先使用 lsb_release
func TestDetect_LSBPreferred(t *testing.T) {
	d := &Detector{
		goos:          "linux",
		kernelRelease: fixedRelease("6.8.0"),
		lsbRelease:    fixedRelease("Arch Linux"),
		osReleasePath: writeOSRelease(t, `PRETTY_NAME="Fedora Linux 41"`),
	}

	env := d.Detect()
	if env.Distro != "Arch Linux" {
		t.Errorf("期望 'Arch Linux'，实际为 '%s'", env.Distro)
	}
	if !env.DistroDetected() {
		t.Error("发行版应被识别")
	}
}

// TestDetect_OSReleaseFallback 测试 os-release 回退
func TestDetect_OSReleaseFallback(t *testing.T) {
	content := `NAME="Rocky Linux"
VERSION="9.4 (Blue Onyx)"
PRETTY_NAME="Rocky Linux 9.4 (Blue Onyx)"
ID="rocky"
`
	d := &Detector{
		goos:          "linux",
		kernelRelease: fixedRelease("5.14.0-427.el9.x86_64"),
		lsbRelease:    failing("lsb_release: not found"),
		osReleasePath: writeOSRelease(t, content),
	}

	env := d.Detect()
	if env.Distro != "Rocky Linux 9.4 (Blue Onyx)" {
		t.Errorf("期望 'Rocky Linux 9.4 (Blue Onyx)'，实际为 '%s'", env.Distro)
	}
	if env.DistroErr != nil {
		t.Errorf("回退成功时不应保留错误: %v", env.DistroErr)
	}
}

// TestDetect_Unknown 测试检测失败时降级为 Unknown 并保留原始错误
func TestDetect_Unknown(t *testing.T) {
	d := &Detector{
		goos:          "linux",
		kernelRelease: failing("uname failed"),
		lsbRelease:    failing("lsb_release: not found"),
		osReleasePath: filepath.Join(t.TempDir(), "missing"),
	}

	env := d.Detect()
	if env.Distro != DistroUnknown {
		t.Errorf("期望 Unknown，实际为 '%s'", env.Distro)
	}
	if env.DistroErr == nil {
		t.Fatal("应保留检测错误")
	}
	if !errors.Is(env.DistroErr, os.ErrNotExist) {
		t.Errorf("错误链中应包含 os.ErrNotExist: %v", env.DistroErr)
	}
	if env.DistroDetected() {
		t.Error("Unknown 不应视为已识别")
	}
	if env.OS != OSLinux {
		t.Errorf("内核版本未知时应归类为 Linux，实际为 %s", env.OS)
	}
}

// TestParseOSRelease_NoPrettyName 测试缺少 PRETTY_NAME
func TestParseOSRelease_NoPrettyName(t *testing.T) {
	path := writeOSRelease(t, "NAME=Alpine\nID=alpine\n")
	if _, err := parseOSRelease(path); err == nil {
		t.Error("缺少 PRETTY_NAME 时应返回错误")
	}
}
