// Package misc keeps build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set with -ldflags "-X ia2amp/misc.version=... -X ia2amp/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
	appName = ""
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit the program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name without extension.
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." {
		return "ia2amp"
	}
	return name
}
