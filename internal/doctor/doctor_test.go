package doctor

import (
	"strings"
	"testing"
)

func TestCollect_UsesDownloadDir(t *testing.T) {
	dir := t.TempDir()
	r := Collect(dir)
	if r.DiskPath != dir {
		t.Errorf("DiskPath = %q, want %q", r.DiskPath, dir)
	}
	if r.DiskTotal == 0 {
		t.Error("DiskTotal = 0, expected a real filesystem size")
	}
}

func TestCollect_MissingDirIsAWarningNotAPanic(t *testing.T) {
	r := Collect("/definitely/not/a/real/path")
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "disk usage unavailable") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a disk warning, got %v", r.Warnings)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{uint64(3) << 30, "3.0 GiB"},
	}
	for _, tc := range cases {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
