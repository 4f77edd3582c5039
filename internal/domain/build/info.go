// Package build holds build information injected at link time.
package build

import "runtime"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Default returns the info of an untagged development build.
func Default() Info {
	return Info{Version: "dev", Commit: "none", BuildDate: "unknown", GoVersion: runtime.Version()}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/splitpane"
}
