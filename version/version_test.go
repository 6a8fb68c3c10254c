package version

import (
	"runtime/debug"
	"testing"
)

func saveAndRestore() func() {
	v, c, b := Version, GitCommit, BuildTime
	return func() {
		Version, GitCommit, BuildTime = v, c, b
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
}

func TestGetLinkerValues(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"
	BuildTime = "2026-01-15T10:30:00Z"

	info := Get()
	if info.GitCommit != "abc1234" {
		t.Errorf("linker commit should win, got %q", info.GitCommit)
	}
	if info.BuildTime != "2026-01-15T10:30:00Z" {
		t.Errorf("linker build time should win, got %q", info.BuildTime)
	}
}

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-02-01T00:00:00Z"},
		},
	}
	var info Info
	fromBuildInfo(&info, bi)

	if info.GitCommit != "0123456" {
		t.Errorf("expected short revision, got %q", info.GitCommit)
	}
	if !info.IsDirty {
		t.Error("expected dirty")
	}
	if info.BuildTime != "2026-02-01T00:00:00Z" {
		t.Errorf("unexpected build time %q", info.BuildTime)
	}
	if info.GoVersion != "go1.26.0" {
		t.Errorf("unexpected go version %q", info.GoVersion)
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"bare", Info{Version: "dev"}, "dev"},
		{"commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0 (abc1234)"},
		{"dirty", Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true}, "1.0.0 (abc1234-dirty)"},
		{
			"full",
			Info{Version: "1.0.0", GitCommit: "abc1234", BuildTime: "2026-01-01T00:00:00Z", GoVersion: "go1.26.0"},
			"1.0.0 (abc1234, built 2026-01-01T00:00:00Z, go1.26.0)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
