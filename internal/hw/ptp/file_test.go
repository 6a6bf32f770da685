package ptp

import (
	"strings"
	"testing"
)

func TestFilePath_FolderAndName(t *testing.T) {
	p := NewFilePath("/store_00010001/DCIM/100TEST", "IMG_0001.JPG")
	if p.Folder() != "/store_00010001/DCIM/100TEST" {
		t.Errorf("folder = %q", p.Folder())
	}
	if p.Name() != "IMG_0001.JPG" {
		t.Errorf("name = %q", p.Name())
	}
	if p.String() != "/store_00010001/DCIM/100TEST/IMG_0001.JPG" {
		t.Errorf("string = %q", p.String())
	}
}

func TestFilePath_TruncatesAtCapacity(t *testing.T) {
	long := strings.Repeat("d", 2*FolderMax)
	p := NewFilePath(long, strings.Repeat("n", 2*NameMax))
	if len(p.Folder()) != FolderMax-1 {
		t.Errorf("folder len = %d, want %d", len(p.Folder()), FolderMax-1)
	}
	if len(p.Name()) != NameMax-1 {
		t.Errorf("name len = %d, want %d", len(p.Name()), NameMax-1)
	}
}

func TestFilePath_ZeroValueIsEmpty(t *testing.T) {
	var p FilePath
	if p.Folder() != "" || p.Name() != "" {
		t.Errorf("zero value = %q / %q, want empty", p.Folder(), p.Name())
	}
}
