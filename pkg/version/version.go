package version

import (
	"encoding/json"
	"fmt"
)

// Build values, overridden through -ldflags "-X".
var (
	// Version is the semver release of shopctl.
	Version = "0.1.0"
	// PreReleaseID marks development builds, e.g. "dev". Empty for releases.
	PreReleaseID = "dev"
	// GitCommit is the short commit hash of the build.
	GitCommit = ""
	// BuildDate is the build timestamp, YYYYMMDDTHHmmSS.
	BuildDate = ""
)

// ExtraSep separates the semver release from the pre-release id.
const ExtraSep = "-"

// Info describes the running build.
type Info struct {
	Version      string        `json:"version"`
	PreReleaseID string        `json:"preReleaseID,omitempty"`
	Metadata     BuildMetadata `json:"metadata"`
}

// BuildMetadata is the semver build metadata of a development build.
type BuildMetadata struct {
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
}

// GetVersionInfo returns the build values as an Info.
func GetVersionInfo() Info {
	return Info{
		Version:      Version,
		PreReleaseID: PreReleaseID,
		Metadata: BuildMetadata{
			GitCommit: GitCommit,
			BuildDate: BuildDate,
		},
	}
}

// String renders Info as JSON for `shopctl version -o json`.
func String() string {
	data, err := json.Marshal(GetVersionInfo())
	if err != nil {
		return ""
	}
	return string(data)
}

// GetVersion returns the full semver of this build. Releases are the bare
// version, development builds carry the pre-release id and, when known, the
// commit and date as build metadata.
func GetVersion() string {
	if PreReleaseID == "" {
		return Version
	}
	v := Version + ExtraSep + PreReleaseID
	if GitCommit == "" || BuildDate == "" {
		return v
	}
	return fmt.Sprintf("%s+%s.%s", v, GitCommit, BuildDate)
}
