package cmd

import (
	"runtime/debug"
)

// Version and Commit are set at build time via -ldflags.
//
//	go build -ldflags "-X xcode-sdk/cmd.Version=v0.2.0 -X xcode-sdk/cmd.Commit=48cae1d"
var (
	Version = ""
	Commit  = ""
)

// versionString returns e.g. "v0.2.0 (48cae1d)", or "dev" plus the VCS
// revision embedded by the Go toolchain when no version was injected.
func versionString() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	c := Commit
	if c == "" {
		c = commitFromBuildInfo()
	}
	if c == "" {
		return v
	}
	return v + " (" + shortCommit(c) + ")"
}

// commitFromBuildInfo extracts vcs.revision from Go's embedded build info.
func commitFromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
