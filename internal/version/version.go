// Package version reports the build version of johnjeong.
package version

import "runtime/debug"

// Version is set with -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = "unknown"

func init() {
	if Version != "unknown" {
		return
	}
	// go install records the module version instead.
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			Version = v
		}
	}
}
