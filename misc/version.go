// Package misc keeps program identification in a single place.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X fic/misc.version=... -X fic/misc.gitHash=..." by the
// build.
var (
	version = "dev"
	gitHash = ""
)

const appName = "fic"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns the commit program was built from. When not provided at
// link time it is taken from embedded VCS build information.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
