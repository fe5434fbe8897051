// Package buildinfo carries version identifiers stamped at build time
// via -ldflags.
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available, for window
// titles and the boot banner.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Full returns the version, commit and build date on one line.
func Full() string {
	return Version + " " + Commit + " " + Date
}
