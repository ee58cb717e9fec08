// Package appinfo carries the application's build-time version metadata.
package appinfo

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set at build time with LDFLAGS, e.g.:
//
//	go build -ldflags '-X github.com/SKalt/container-image-dist-ref/pkg/appinfo.version=v1.0.0'
var (
	// version of the release, "dev" for untagged builds
	version = "dev"
	// gitCommit output from `git rev-parse HEAD`
	gitCommit = ""
	// gitTreeState is "clean" or "dirty" per `git status --porcelain`
	gitTreeState = ""
	// buildDate output from `date -u +'%Y-%m-%dT%H:%M:%SZ'`
	buildDate = "1970-01-01T00:00:00Z"
)

// Version is the application's version information: release version, git
// provenance and build environment.
type Version struct {
	Version string    `json:"version" yaml:"version"`
	Git     GitInfo   `json:"git" yaml:"git"`
	Build   BuildInfo `json:"build" yaml:"build"`
}

// GitInfo records the git state the binary was built from.
type GitInfo struct {
	Commit    string `json:"commit" yaml:"commit"`
	TreeState string `json:"tree_state" yaml:"tree_state"`
}

// BuildInfo records the toolchain and platform of the build.
type BuildInfo struct {
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty" yaml:"go_version,omitempty"`
	Compiler  string `json:"compiler,omitempty" yaml:"compiler,omitempty"`
	Platform  string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

// GetVersion returns the Version of the running application.
func GetVersion() Version {
	return Version{
		Version: version,
		Git: GitInfo{
			Commit:    gitCommit,
			TreeState: gitTreeState,
		},
		Build: BuildInfo{
			BuildDate: buildDate,
			GoVersion: runtime.Version(),
			Compiler:  runtime.Compiler,
			Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		},
	}
}

// ShortVersion returns the version plus an abbreviated commit when known.
func ShortVersion() string {
	if len(gitCommit) > 8 {
		return version + "-" + gitCommit[:8]
	}
	return version
}

// NewVersionWriter wraps v for rendering.
func NewVersionWriter(v Version) *VersionWriter {
	return &VersionWriter{version: v}
}

// VersionWriter renders a Version as text, json or yaml.
type VersionWriter struct {
	version Version

	short   bool
	format  string
	appName string
}

// SetShort selects the one-line text rendering.
func (vw *VersionWriter) SetShort(short bool) *VersionWriter {
	vw.short = short
	return vw
}

// SetFormat selects the output format: "text", "json" or "yaml".
func (vw *VersionWriter) SetFormat(format string) *VersionWriter {
	vw.format = format
	return vw
}

// SetAppName prefixes text output with the application name.
func (vw *VersionWriter) SetAppName(name string) *VersionWriter {
	vw.appName = name
	return vw
}

// Version returns the wrapped Version.
func (vw VersionWriter) Version() Version { return vw.version }

// Write renders the version into w.
func (vw VersionWriter) Write(w io.Writer) error {
	switch strings.ToLower(vw.format) {
	case "yaml", "yml":
		return yaml.NewEncoder(w).Encode(vw.version)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vw.version)
	}
	if vw.short {
		_, err := fmt.Fprintln(w, vw.Line())
		return err
	}
	_, err := io.WriteString(w, vw.Extended())
	return err
}

// Line returns the one-line version string.
func (vw VersionWriter) Line() string {
	v := vw.version
	s := v.Version
	if v.Git.Commit != "" {
		s += " (" + v.Git.Commit + ")"
	}
	if vw.appName != "" {
		s = vw.appName + " " + s
	}
	return s
}

// Extended returns the multi-line version string.
func (vw VersionWriter) Extended() string {
	v := vw.version
	var s string
	if vw.appName != "" {
		s += fmt.Sprintf("Application : %s\n", vw.appName)
	}
	s += fmt.Sprintf(`Version     : %s
Commit      : %s
TreeState   : %s
BuildDate   : %s
GoVersion   : %s
Compiler    : %s
Platform    : %s
`,
		v.Version, v.Git.Commit, v.Git.TreeState,
		v.Build.BuildDate, v.Build.GoVersion, v.Build.Compiler, v.Build.Platform)
	return s
}
