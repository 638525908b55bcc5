package engine

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Version is the walletd release version.
const Version = "0.3.0"

// resolveBuildInfo assembles build metadata once at startup. The VCS
// revision lookup is best-effort: binaries built outside a checkout simply
// omit the field.
func resolveBuildInfo(startedAt time.Time) BuildInfo {
	info := BuildInfo{
		Version:   Version,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Runtime:   runtime.Version(),
		BuildTime: startedAt.UTC().Format(time.RFC3339),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.VCSRevision = setting.Value
		case "vcs.time":
			info.BuildTime = setting.Value
		}
	}

	return info
}
