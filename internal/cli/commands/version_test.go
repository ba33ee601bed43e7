package commands

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		info    VersionInfo
		wantOut []string
		wantErr bool
	}{
		{
			name:    "default version",
			info:    VersionInfo{Version: "0.1.0"},
			wantOut: []string{"flatlint v0.1.0", "MDX", "Built: unknown", "Go version: " + runtime.Version()},
		},
		{
			name:    "link time build info",
			info:    VersionInfo{Version: "1.2.3", Commit: "abc1234", BuildDate: "2026-10-01"},
			wantOut: []string{"flatlint v1.2.3", "Commit: abc1234", "Built: 2026-10-01"},
		},
		{
			name:    "dev version",
			info:    VersionInfo{Version: "dev"},
			wantOut: []string{"flatlint vdev", "OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.info)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{})

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			output := buf.String()
			for _, want := range tt.wantOut {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestNewVersionCommand_JSON(t *testing.T) {
	cmd := NewVersionCommand(VersionInfo{Version: "1.2.3", Commit: "abc1234"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got VersionInfo
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	want := VersionInfo{
		Version:   "1.2.3",
		Commit:    "abc1234",
		BuildDate: "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if got != want {
		t.Errorf("version info = %+v, want %+v", got, want)
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand(VersionInfo{Version: "test"})

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}

	if cmd.Short == "" {
		t.Error("Short should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long should not be empty")
	}

	if cmd.Flags().Lookup("format") == nil {
		t.Error("format flag should exist")
	}
}
