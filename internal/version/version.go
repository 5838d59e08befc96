// Package version exposes the build identity stamped at compile time.
package version

import (
	"fmt"
	"runtime/debug"
)

// Overridden through -ldflags on release builds.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Info is the resolved build identity.
type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Revision  string `json:"revision,omitempty"`
}

// Get combines the stamped variables with what the toolchain recorded about
// the build.
func Get() Info {
	info := Info{Version: Version, BuildTime: BuildTime}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 8 {
			info.Revision = setting.Value[:8]
		}
	}
	return info
}

func (i Info) String() string {
	s := fmt.Sprintf("%s, go %s", i.Version, i.GoVersion)
	if i.BuildTime != "unknown" {
		s += ", built " + i.BuildTime
	}
	if i.Revision != "" {
		s += ", rev " + i.Revision
	}
	return s
}
