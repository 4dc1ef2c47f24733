// Package version reports the termfolio build version.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

const defaultModule = "pkt.systems/termfolio"

// buildVersion is set via -ldflags "-X pkt.systems/termfolio/internal/version.buildVersion=...".
var buildVersion = ""

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Module    string `json:"module"`
	Revision  string `json:"revision,omitempty"`
	GoVersion string `json:"go_version"`
}

// Describe collects version, module and VCS revision.
func Describe() Info {
	out := Info{
		Version:   CurrentWithDirty(),
		Module:    Module(),
		GoVersion: runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		out.Revision = buildSetting(info, "vcs.revision")
	}
	return out
}

// String renders "module version (go version)".
func (i Info) String() string {
	s := i.Module + " " + i.Version
	if i.Revision != "" && !strings.Contains(i.Version, shortRevision(i.Revision)) {
		s += " " + shortRevision(i.Revision)
	}
	return s + " (" + i.GoVersion + ")"
}

// Current returns the best available version string (without dirty suffix).
func Current() string {
	return currentFromBuildInfo(false)
}

// CurrentWithDirty returns the best available version string (including dirty suffix when available).
func CurrentWithDirty() string {
	return currentFromBuildInfo(true)
}

// Module returns the module path from build info when available.
func Module() string {
	info, ok := debug.ReadBuildInfo()
	if ok {
		if path := strings.TrimSpace(info.Main.Path); path != "" {
			return path
		}
	}
	return defaultModule
}

func currentFromBuildInfo(includeDirty bool) string {
	if strings.TrimSpace(buildVersion) != "" {
		return normalizeVersion(buildVersion, includeDirty)
	}
	info, ok := debug.ReadBuildInfo()
	if ok {
		if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
			return normalizeVersion(v, includeDirty)
		}
		if v := pseudoFromBuildInfo(info, includeDirty); v != "" {
			return normalizeVersion(v, includeDirty)
		}
	}
	return "v0.0.0-unknown"
}

func normalizeVersion(v string, includeDirty bool) string {
	value := strings.TrimSpace(v)
	if includeDirty {
		return value
	}
	return strings.TrimSuffix(value, "+dirty")
}

func pseudoFromBuildInfo(info *debug.BuildInfo, includeDirty bool) string {
	if info == nil {
		return ""
	}
	revision := buildSetting(info, "vcs.revision")
	vcsTime := buildSetting(info, "vcs.time")
	modified := buildSetting(info, "vcs.modified") == "true"
	if revision == "" || vcsTime == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, vcsTime)
	if err != nil {
		return ""
	}
	ver := "v0.0.0-" + parsed.UTC().Format("20060102150405") + "-" + shortRevision(revision)
	if modified && includeDirty {
		ver += "+dirty"
	}
	return ver
}

func buildSetting(info *debug.BuildInfo, key string) string {
	if info == nil {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
