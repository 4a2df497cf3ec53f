// Package validate implements the file-path checks that gate the
// script and icon options of a packaging task.
package validate

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	scriptExtensions = map[string]bool{".py": true, ".pyw": true}
	iconExtensions   = map[string]bool{".ico": true, ".icns": true, ".png": true}
)

// FilePathValidator validates user-supplied file paths.
type FilePathValidator struct{}

// ValidateScript reports whether path is an existing, readable Python
// script file.
func (FilePathValidator) ValidateScript(path string) bool {
	if !hasExtension(path, scriptExtensions) {
		return false
	}
	if !isRegularFile(path) {
		return false
	}
	return isReadable(path)
}

// ValidateIcon reports whether path is an existing icon file of a
// supported format.
func (FilePathValidator) ValidateIcon(path string) bool {
	if !hasExtension(path, iconExtensions) {
		return false
	}
	return isRegularFile(path)
}

func hasExtension(path string, allowed map[string]bool) bool {
	return allowed[strings.ToLower(filepath.Ext(path))]
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
