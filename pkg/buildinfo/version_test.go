package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo, ok bool) {
	t.Helper()
	old := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	t.Cleanup(func() { readBuildInfo = old })
}

func TestGetFallsBackToToolchainInfo(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}, true)

	got := Get()
	want := Info{Version: "v0.3.0", Commit: "abc123", Date: "2026-01-02T03:04:05Z"}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestGetPrefersLdflags(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	}, true)
	oldV, oldC := Version, Commit
	Version, Commit = "v1.0.0", "fff"
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	if got := Get(); got.Version != "v1.0.0" || got.Commit != "fff" {
		t.Errorf("Get() = %+v, want ldflags values", got)
	}
}

func TestDevelBuild(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)
	if got := Get().Version; got != "dev" {
		t.Errorf("Version = %q, want dev", got)
	}

	stubBuildInfo(t, nil, false)
	if s := String(); !strings.HasPrefix(s, "version: dev\n") {
		t.Errorf("String() = %q", s)
	}
	if tpl := Template(); !strings.HasPrefix(tpl, "{{.Name}} version dev") {
		t.Errorf("Template() = %q", tpl)
	}
}
