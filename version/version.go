// Package version holds build metadata.
package version

import (
	"fmt"
	"runtime"
)

// Values pre-populated in build using linker flags:
//
//	go build -ldflags "-X github.com/func/prompt/version.Version=v1.0.0"
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// String returns a single line describing the build.
func String() string {
	return fmt.Sprintf("%s, built %s, %s", Version, BuildDate, runtime.Version())
}
