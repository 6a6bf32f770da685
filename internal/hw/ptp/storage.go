package ptp

// StorageKind describes the hardware class of a storage unit.
type StorageKind int

const (
	StorageUnknown StorageKind = iota
	StorageFixedROM
	StorageRemovableROM
	StorageFixedRAM
	StorageRemovableRAM
)

func (k StorageKind) String() string {
	switch k {
	case StorageFixedROM:
		return "fixed ROM"
	case StorageRemovableROM:
		return "removable ROM"
	case StorageFixedRAM:
		return "fixed RAM"
	case StorageRemovableRAM:
		return "removable RAM"
	default:
		return "unknown"
	}
}

// AccessMode describes what the host may do with a storage unit.
type AccessMode int

const (
	AccessReadWrite AccessMode = iota
	AccessReadOnly
	AccessReadOnlyWithDelete
)

func (a AccessMode) String() string {
	switch a {
	case AccessReadOnly:
		return "read-only"
	case AccessReadOnlyWithDelete:
		return "read-only, delete allowed"
	default:
		return "read-write"
	}
}

// StorageInfo describes one filesystem on the camera. Plain copyable
// record; the driver fills one entry per filesystem.
type StorageInfo struct {
	BaseDir     string
	Label       string
	Description string
	Kind        StorageKind
	Access      AccessMode
	CapacityKB  uint64
	FreeKB      uint64
	FreeImages  uint64
}

// Storage queries the camera's filesystem list. The returned slice is
// allocated by the driver for this call and owned by the caller from
// here on; its length is exactly the number of filesystems reported.
// A camera with no storage yields an empty list, not an error.
func (s *Session) Storage(cctx *Context) ([]StorageInfo, error) {
	list, st := s.drv.GetStorageInfo(s.h, cctx)
	if err := st.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
