package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadFirstRunCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "acadcal.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartYear != 2012 || cfg.EndYear != 0 || cfg.LogLevel != "info" || cfg.Format != FormatTable {
		t.Errorf("first-run config = %+v, want defaults", cfg)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file was not created: %v", err)
	}
	if runtime.GOOS != "windows" {
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("config file perms = %o, want 0600", perm)
		}
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("Load(\"\") = nil error, want error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acadcal.yaml")

	in := &Config{
		StartYear: 2014,
		EndYear:   2020,
		LogLevel:  "debug",
		Format:    FormatICS,
		Output:    "calendar.ics",
	}
	if err := in.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "zero values get defaults",
			in:   Config{},
			want: Config{StartYear: 2012, LogLevel: "info", Format: FormatTable},
		},
		{
			name: "unknown format falls back to table",
			in:   Config{StartYear: 2015, LogLevel: "warn", Format: "xml"},
			want: Config{StartYear: 2015, LogLevel: "warn", Format: FormatTable},
		},
		{
			name: "valid values untouched",
			in:   Config{StartYear: 2013, EndYear: 2019, LogLevel: "error", Format: FormatCSV},
			want: Config{StartYear: 2013, EndYear: 2019, LogLevel: "error", Format: FormatCSV},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Normalize()
			if cfg != tt.want {
				t.Fatalf("Normalize() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}
