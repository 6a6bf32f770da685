package ptp

import "strings"

// DriverMaturity reports how well the driver supports a camera model.
type DriverMaturity int

const (
	MaturityProduction DriverMaturity = iota
	MaturityTesting
	MaturityExperimental
	MaturityDeprecated
)

func (m DriverMaturity) String() string {
	switch m {
	case MaturityTesting:
		return "testing"
	case MaturityExperimental:
		return "experimental"
	case MaturityDeprecated:
		return "deprecated"
	default:
		return "production"
	}
}

// CameraOps is a bitmask of camera-level operations a driver supports.
type CameraOps uint32

const (
	OpCaptureImage CameraOps = 1 << iota
	OpCaptureVideo
	OpCaptureAudio
	OpCapturePreview
	OpConfig
	OpTriggerCapture
)

// Has reports whether all operations in mask are supported.
func (o CameraOps) Has(mask CameraOps) bool { return o&mask == mask }

func (o CameraOps) String() string {
	names := []struct {
		op   CameraOps
		name string
	}{
		{OpCaptureImage, "capture-image"},
		{OpCaptureVideo, "capture-video"},
		{OpCaptureAudio, "capture-audio"},
		{OpCapturePreview, "capture-preview"},
		{OpConfig, "config"},
		{OpTriggerCapture, "trigger-capture"},
	}
	return joinFlags(func(i int) (bool, string) {
		return o.Has(names[i].op), names[i].name
	}, len(names))
}

// FileOps is a bitmask of per-file operations a driver supports.
type FileOps uint32

const (
	FileDelete FileOps = 1 << iota
	FilePreview
	FileRaw
	FileAudio
	FileExif
)

// Has reports whether all operations in mask are supported.
func (o FileOps) Has(mask FileOps) bool { return o&mask == mask }

func (o FileOps) String() string {
	names := []struct {
		op   FileOps
		name string
	}{
		{FileDelete, "delete"},
		{FilePreview, "preview"},
		{FileRaw, "raw"},
		{FileAudio, "audio"},
		{FileExif, "exif"},
	}
	return joinFlags(func(i int) (bool, string) {
		return o.Has(names[i].op), names[i].name
	}, len(names))
}

// joinFlags renders the set flag names as a comma-separated list.
func joinFlags(get func(i int) (bool, string), n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		set, name := get(i)
		if !set {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
	}
	if b.Len() == 0 {
		return "none"
	}
	return b.String()
}

// Abilities is the camera's capability record: model, driver maturity,
// and the operations the driver implements. Plain copyable value, no
// behavior beyond bitmask queries.
type Abilities struct {
	Model    string
	Maturity DriverMaturity
	Ops      CameraOps
	FileOps  FileOps
}

// PortKind identifies the kind of port a camera is connected through.
type PortKind int

const (
	PortNone PortKind = iota
	PortSerial
	PortUSB
	PortDisk
	PortPTPIP
	PortIP
)

func (k PortKind) String() string {
	switch k {
	case PortSerial:
		return "serial"
	case PortUSB:
		return "usb"
	case PortDisk:
		return "disk"
	case PortPTPIP:
		return "ptp/ip"
	case PortIP:
		return "ip"
	default:
		return "none"
	}
}

// PortInfo describes the port the camera is connected to.
type PortInfo struct {
	Kind PortKind
	Name string
	Path string
}
