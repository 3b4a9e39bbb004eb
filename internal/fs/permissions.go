package fs

import "os"

const permissionLetters = "rwx"

// SymbolicPermissions renders mode as a ten character string such as
// "drwxr-xr-x". Only the directory flag and the nine permission bits are
// shown.
func SymbolicPermissions(mode os.FileMode) string {
	buf := make([]byte, 10)
	buf[0] = '-'
	if mode.IsDir() {
		buf[0] = 'd'
	}

	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = permissionLetters[i%3]
		} else {
			buf[i+1] = '-'
		}
	}
	return string(buf)
}
