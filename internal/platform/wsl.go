package platform

import "strings"

// isWSLKernel 内核版本中包含 microsoft 即视为 WSL
func isWSLKernel(kernelRelease string) bool {
	return strings.Contains(strings.ToLower(kernelRelease), "microsoft")
}

// wslVersion 根据内核版本推断 WSL 版本
func wslVersion(kernelRelease string) string {
	if strings.Contains(strings.ToLower(kernelRelease), "wsl2") {
		return "2"
	}
	return "1"
}
