package platform

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// detectDistro 依次尝试 lsb_release 与 os-release
func (d *Detector) detectDistro() (string, error) {
	name, lsbErr := d.lsbRelease()
	if lsbErr == nil {
		return name, nil
	}

	name, osErr := parseOSRelease(d.osReleasePath)
	if osErr == nil {
		return name, nil
	}

	return DistroUnknown, errors.Join(lsbErr, osErr)
}

// lsbReleaseDescription 使用 lsb_release -ds 获取发行版描述
func lsbReleaseDescription() (string, error) {
	output, err := exec.Command("lsb_release", "-ds").Output()
	if err != nil {
		return "", fmt.Errorf("lsb_release: %w", err)
	}

	name := strings.Trim(strings.TrimSpace(string(output)), `"`)
	if name == "" {
		return "", fmt.Errorf("lsb_release 输出为空")
	}
	return name, nil
}

// parseOSRelease 从 os-release 文件中读取 PRETTY_NAME
func parseOSRelease(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "PRETTY_NAME") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		return strings.Trim(strings.TrimSpace(parts[1]), `"`), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("%s 中未找到 PRETTY_NAME", path)
}

// HasPackageManager 检查是否有指定的包管理器
func HasPackageManager(manager string) bool {
	_, err := exec.LookPath(manager)
	return err == nil
}

// GetAvailablePackageManagers 获取系统中可用的包管理器列表
func GetAvailablePackageManagers() []string {
	managers := []string{"pacman", "apt", "zypper", "dnf", "dnf5"}
	var available []string

	for _, manager := range managers {
		if HasPackageManager(manager) {
			available = append(available, manager)
		}
	}

	return available
}
