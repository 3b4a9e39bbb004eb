//go:build windows

package fs

import "syscall"

const fileAttributeHidden = 0x02

// IsHidden reports dot-files and entries carrying the hidden attribute.
func IsHidden(fullPath string, name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	if fullPath == "" {
		return false
	}

	ptr, err := syscall.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	return attrs&fileAttributeHidden != 0
}
