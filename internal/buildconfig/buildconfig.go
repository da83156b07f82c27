package buildconfig

import "fmt"

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// Generator names this build in written documents.
func Generator() string {
	return fmt.Sprintf("mcdaxml %s (%s)", version, commit)
}
