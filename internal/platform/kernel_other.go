//go:build !unix

package platform

import (
	"fmt"
	"runtime"
)

// KernelRelease 非 Unix 系统上不可用
func KernelRelease() (string, error) {
	return "", fmt.Errorf("%s 不支持读取内核版本", runtime.GOOS)
}
