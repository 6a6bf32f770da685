package ptp

import (
	"bytes"
	"fmt"
)

// Capacity of the fixed path fields, per the native protocol.
const (
	FolderMax = 1024
	NameMax   = 128
)

// FilePath names a file's location on the camera's storage: a folder
// and a base name. It is a reference by name, not the file's bytes; it
// stays meaningful only while the originating session is open and the
// file has not been deleted on the camera.
//
// FilePath values are immutable and freely copyable. They are produced
// by Session.CaptureImage and Session.WaitForFile and consumed by
// Session.Download.
type FilePath struct {
	folder [FolderMax]byte
	name   [NameMax]byte
}

// NewFilePath builds a FilePath from folder and base name. Values
// longer than the native field capacity are truncated; the last byte
// is always reserved for the terminator.
func NewFilePath(folder, name string) FilePath {
	var p FilePath
	copy(p.folder[:FolderMax-1], folder)
	copy(p.name[:NameMax-1], name)
	return p
}

// Folder returns the directory the file is stored in.
func (p FilePath) Folder() string {
	return cstring(p.folder[:])
}

// Name returns the base name of the file without the directory.
func (p FilePath) Name() string {
	return cstring(p.name[:])
}

func (p FilePath) String() string {
	return fmt.Sprintf("%s/%s", p.Folder(), p.Name())
}

// cstring decodes a NUL-terminated byte field. Bytes past the first
// terminator are never read.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
