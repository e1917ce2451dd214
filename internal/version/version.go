// Package version reports build metadata for siunit binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

const (
	unknownValue     = "unknown"
	commitHashLength = 7
	arrowModule      = "github.com/apache/arrow-go/v18"
)

// Build-time variables set by ldflags
var (
	Version   = "dev"
	GitCommit = unknownValue
	BuildDate = unknownValue
)

// BuildInfo is what `siunit-cli version` prints.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	// Arrow is the arrow-go module version the binary was linked against.
	Arrow string `json:"arrow"`
	Dirty bool   `json:"dirty"`
}

// Info returns the ldflags values, filled in from the embedded module and VCS
// data where ldflags left them unset.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Arrow:     unknownValue,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withBuildInfo(info, bi)
	}
	return info
}

func withBuildInfo(info BuildInfo, bi *debug.BuildInfo) BuildInfo {
	for _, dep := range bi.Deps {
		if dep.Path == arrowModule {
			info.Arrow = dep.Version
		}
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == unknownValue {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == unknownValue {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String renders the text form of the version command. Unknown fields are omitted.
func (b BuildInfo) String() string {
	var sb strings.Builder
	sb.WriteString("siunit Temperature Arrays\n")
	sb.WriteString("Version: " + b.Version)
	if b.Dirty {
		sb.WriteString(" (dirty)")
	}
	sb.WriteString("\n")

	if b.GitCommit != unknownValue {
		commit := b.GitCommit
		if len(commit) > commitHashLength {
			commit = commit[:commitHashLength]
		}
		sb.WriteString("Git Commit: " + commit + "\n")
	}
	if b.BuildDate != unknownValue {
		sb.WriteString("Build Date: " + b.BuildDate + "\n")
	}
	sb.WriteString("Go Version: " + b.GoVersion + "\n")
	if b.Arrow != unknownValue {
		sb.WriteString("Arrow: " + b.Arrow + "\n")
	}
	return sb.String()
}

// UserAgent identifies siunit in outbound requests and logs.
func UserAgent() string {
	return "siunit/" + Version
}

// IsRelease reports whether Version is a tagged release without a pre-release suffix.
func IsRelease() bool {
	return Version != "dev" && !strings.Contains(Version, "-")
}

// IsPreRelease reports whether Version carries an alpha, beta or rc suffix.
func IsPreRelease() bool {
	for _, marker := range []string{"-alpha", "-beta", "-rc"} {
		if strings.Contains(Version, marker) {
			return true
		}
	}
	return false
}

// SemVer holds the components of a [v]MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD] version.
type SemVer struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
	Build      string
}

// ParseSemVer splits a version string into its components. It does not
// validate pre-release or build identifiers.
func ParseSemVer(version string) (*SemVer, error) {
	if version == "" {
		return nil, fmt.Errorf("version string cannot be empty")
	}

	core, build, _ := strings.Cut(strings.TrimPrefix(version, "v"), "+")
	core, preRelease, _ := strings.Cut(core, "-")

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid version format: %s", version)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid version component %q in %s", p, version)
		}
		nums[i] = n
	}

	return &SemVer{
		Major:      nums[0],
		Minor:      nums[1],
		Patch:      nums[2],
		PreRelease: preRelease,
		Build:      build,
	}, nil
}
