//go:build gphoto2

package ptp

/*
#cgo pkg-config: libgphoto2
#include <stdlib.h>
#include <string.h>
#include <gphoto2/gphoto2.h>
*/
import "C"

import (
	"errors"
	"io"
	"unsafe"
)

// gphoto2Driver drives real hardware through libgphoto2. Only built
// with -tags gphoto2; needs the library and its headers installed.
//
// Status codes pass through unchanged: the Status constants mirror the
// libgphoto2 result codes.
type gphoto2Driver struct {
	ctx  *C.GPContext
	next Handle
	cams map[Handle]*C.Camera
}

func newGphoto2Driver() (Driver, error) {
	ctx := C.gp_context_new()
	if ctx == nil {
		return nil, errors.New("gp_context_new failed")
	}
	return &gphoto2Driver{ctx: ctx, cams: make(map[Handle]*C.Camera)}, nil
}

func (d *gphoto2Driver) NewSession() (Handle, Status) {
	var cam *C.Camera
	if ret := C.gp_camera_new(&cam); ret != C.GP_OK {
		return 0, Status(ret)
	}
	d.next++
	d.cams[d.next] = cam
	return d.next, StatusOK
}

func (d *gphoto2Driver) InitSession(h Handle, cctx *Context) Status {
	cam := d.cams[h]
	if cam == nil {
		return StatusBadParameters
	}
	cctx.Status("detecting camera")
	return Status(C.gp_camera_init(cam, d.ctx))
}

func (d *gphoto2Driver) ReleaseSession(h Handle) {
	if cam := d.cams[h]; cam != nil {
		C.gp_camera_unref(cam)
		delete(d.cams, h)
	}
}

func (d *gphoto2Driver) CaptureImage(h Handle, out *FilePath, cctx *Context) Status {
	cam := d.cams[h]
	if cam == nil {
		return StatusBadParameters
	}
	var cfp C.CameraFilePath
	if ret := C.gp_camera_capture(cam, C.GP_CAPTURE_IMAGE, &cfp, d.ctx); ret != C.GP_OK {
		return Status(ret)
	}
	*out = NewFilePath(C.GoString(&cfp.folder[0]), C.GoString(&cfp.name[0]))
	return StatusOK
}

func (d *gphoto2Driver) TriggerCapture(h Handle, cctx *Context) Status {
	cam := d.cams[h]
	if cam == nil {
		return StatusBadParameters
	}
	return Status(C.gp_camera_trigger_capture(cam, d.ctx))
}

func (d *gphoto2Driver) WaitForEvent(h Handle, timeoutMs int, cctx *Context) (EventType, *EventData, Status) {
	cam := d.cams[h]
	if cam == nil {
		return EventUnknown, nil, StatusBadParameters
	}
	var evt C.CameraEventType
	var data unsafe.Pointer
	if ret := C.gp_camera_wait_for_event(cam, C.int(timeoutMs), &evt, &data, d.ctx); ret != C.GP_OK {
		if data != nil {
			C.free(data)
		}
		return EventUnknown, nil, Status(ret)
	}
	typ := EventType(evt)
	if data == nil {
		return typ, nil, StatusOK
	}
	// The payload keeps owning the native allocation until the session
	// hands it back through FreeEventData.
	payload := &EventData{raw: data}
	switch typ {
	case EventFileAdded, EventFolderAdded:
		cfp := (*C.CameraFilePath)(data)
		payload.Path = NewFilePath(C.GoString(&cfp.folder[0]), C.GoString(&cfp.name[0]))
	case EventUnknown:
		payload.Info = C.GoString((*C.char)(data))
	}
	return typ, payload, StatusOK
}

func (d *gphoto2Driver) FreeEventData(data *EventData) {
	if data == nil || data.raw == nil {
		return
	}
	C.free(data.raw)
	data.raw = nil
}

func (d *gphoto2Driver) GetFile(h Handle, folder, name string, dst io.Writer, cctx *Context) Status {
	cam := d.cams[h]
	if cam == nil {
		return StatusBadParameters
	}
	cfolder := C.CString(folder)
	defer C.free(unsafe.Pointer(cfolder))
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var cf *C.CameraFile
	if ret := C.gp_file_new(&cf); ret != C.GP_OK {
		return Status(ret)
	}
	defer C.gp_file_unref(cf)

	if ret := C.gp_camera_file_get(cam, cfolder, cname, C.GP_FILE_TYPE_NORMAL, cf, d.ctx); ret != C.GP_OK {
		return Status(ret)
	}
	var cdata *C.char
	var size C.ulong
	if ret := C.gp_file_get_data_and_size(cf, &cdata, &size); ret != C.GP_OK {
		return Status(ret)
	}
	if _, err := dst.Write(C.GoBytes(unsafe.Pointer(cdata), C.int(size))); err != nil {
		return StatusIO
	}
	cctx.Progress(int64(size), int64(size))
	return StatusOK
}

func (d *gphoto2Driver) GetStorageInfo(h Handle, cctx *Context) ([]StorageInfo, Status) {
	cam := d.cams[h]
	if cam == nil {
		return nil, StatusBadParameters
	}
	var sifs *C.CameraStorageInformation
	var n C.int
	if ret := C.gp_camera_get_storageinfo(cam, &sifs, &n, d.ctx); ret != C.GP_OK {
		return nil, Status(ret)
	}
	defer C.free(unsafe.Pointer(sifs))

	entries := unsafe.Slice(sifs, int(n))
	list := make([]StorageInfo, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		list = append(list, StorageInfo{
			BaseDir:     C.GoString(&e.basedir[0]),
			Label:       C.GoString(&e.label[0]),
			Description: C.GoString(&e.description[0]),
			Kind:        StorageKind(e._type),
			Access:      AccessMode(e.access),
			CapacityKB:  uint64(e.capacitykbytes),
			FreeKB:      uint64(e.freekbytes),
			FreeImages:  uint64(e.freeimages),
		})
	}
	return list, StatusOK
}

func (d *gphoto2Driver) GetSummary(h Handle, buf *TextBuffer, cctx *Context) Status {
	return d.textQuery(h, buf, func(cam *C.Camera, t *C.CameraText) C.int {
		return C.gp_camera_get_summary(cam, t, d.ctx)
	})
}

func (d *gphoto2Driver) GetManual(h Handle, buf *TextBuffer, cctx *Context) Status {
	return d.textQuery(h, buf, func(cam *C.Camera, t *C.CameraText) C.int {
		return C.gp_camera_get_manual(cam, t, d.ctx)
	})
}

func (d *gphoto2Driver) GetAbout(h Handle, buf *TextBuffer, cctx *Context) Status {
	return d.textQuery(h, buf, func(cam *C.Camera, t *C.CameraText) C.int {
		return C.gp_camera_get_about(cam, t, d.ctx)
	})
}

func (d *gphoto2Driver) textQuery(h Handle, buf *TextBuffer, query func(*C.Camera, *C.CameraText) C.int) Status {
	cam := d.cams[h]
	if cam == nil {
		return StatusBadParameters
	}
	var t C.CameraText
	if ret := query(cam, &t); ret != C.GP_OK {
		return Status(ret)
	}
	C.memcpy(unsafe.Pointer(&buf[0]), unsafe.Pointer(&t.text[0]), C.size_t(TextMax))
	return StatusOK
}

func (d *gphoto2Driver) GetAbilities(h Handle) (Abilities, Status) {
	cam := d.cams[h]
	if cam == nil {
		return Abilities{}, StatusBadParameters
	}
	var ab C.CameraAbilities
	if ret := C.gp_camera_get_abilities(cam, &ab); ret != C.GP_OK {
		return Abilities{}, Status(ret)
	}
	a := Abilities{
		Model:    C.GoString(&ab.model[0]),
		Maturity: DriverMaturity(ab.status),
		// CameraOps mirrors the native operation bits.
		Ops: CameraOps(ab.operations),
	}
	// File operation bits are not contiguous natively; map per flag.
	if ab.file_operations&C.GP_FILE_OPERATION_DELETE != 0 {
		a.FileOps |= FileDelete
	}
	if ab.file_operations&C.GP_FILE_OPERATION_PREVIEW != 0 {
		a.FileOps |= FilePreview
	}
	if ab.file_operations&C.GP_FILE_OPERATION_RAW != 0 {
		a.FileOps |= FileRaw
	}
	if ab.file_operations&C.GP_FILE_OPERATION_AUDIO != 0 {
		a.FileOps |= FileAudio
	}
	if ab.file_operations&C.GP_FILE_OPERATION_EXIF != 0 {
		a.FileOps |= FileExif
	}
	return a, StatusOK
}

func (d *gphoto2Driver) GetPortInfo(h Handle) (PortInfo, Status) {
	cam := d.cams[h]
	if cam == nil {
		return PortInfo{}, StatusBadParameters
	}
	var pi C.GPPortInfo
	if ret := C.gp_camera_get_port_info(cam, &pi); ret != C.GP_OK {
		return PortInfo{}, Status(ret)
	}
	var name, path *C.char
	C.gp_port_info_get_name(pi, &name)
	C.gp_port_info_get_path(pi, &path)
	var ptype C.GPPortType
	C.gp_port_info_get_type(pi, &ptype)

	kind := PortNone
	switch ptype {
	case C.GP_PORT_SERIAL:
		kind = PortSerial
	case C.GP_PORT_USB, C.GP_PORT_USB_DISK_DIRECT, C.GP_PORT_USB_SCSI:
		kind = PortUSB
	case C.GP_PORT_DISK:
		kind = PortDisk
	case C.GP_PORT_PTPIP:
		kind = PortPTPIP
	case C.GP_PORT_IP:
		kind = PortIP
	}
	return PortInfo{Kind: kind, Name: C.GoString(name), Path: C.GoString(path)}, StatusOK
}
