//go:build unix

package platform

import "golang.org/x/sys/unix"

// KernelRelease 通过 uname(2) 获取内核版本字符串
func KernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
