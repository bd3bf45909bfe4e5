// Package misc keeps build information.
package misc

import (
	"runtime/debug"
)

// Set by linker with -ldflags "-X plotstyle/misc.version=...".
var (
	version = "dev"
	gitHash = ""
)

const appName = "plotstyle"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit program was built from. When linker did not
// provide it, VCS information recorded by go build is used.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
