package ptp

import (
	"fmt"
	"io"
	"time"

	"github.com/cjeanneret/tethergo/internal/debug"
)

// Sim is an in-memory camera driver, used when no real hardware is
// attached (camera.driver: "sim" in the config). It keeps shots in a
// virtual DCIM folder and feeds the event stream the way a PTP camera
// does, including a property-change event ahead of each file-added
// event. Like any Driver it is not safe for concurrent use.
type Sim struct {
	next Handle
	cams map[Handle]*simCamera
}

type simCamera struct {
	initialized bool
	shots       int
	files       map[string]int // "folder/name" -> size in bytes
	pending     []simEvent
}

type simEvent struct {
	typ  EventType
	data *EventData
}

const (
	simModel  = "TetherGo Virtual Camera"
	simFolder = "/store_00010001/DCIM/100TETHR"
)

// NewSim returns a simulated driver with one connected camera.
func NewSim() *Sim {
	return &Sim{cams: make(map[Handle]*simCamera)}
}

func (d *Sim) NewSession() (Handle, Status) {
	d.next++
	d.cams[d.next] = &simCamera{files: make(map[string]int)}
	debug.Native("sim.NewSession", StatusOK)
	return d.next, StatusOK
}

func (d *Sim) InitSession(h Handle, cctx *Context) Status {
	cam, ok := d.cams[h]
	if !ok {
		return StatusBadParameters
	}
	cctx.Status("detected %s", simModel)
	cam.initialized = true
	debug.Native("sim.InitSession", StatusOK)
	return StatusOK
}

func (d *Sim) ReleaseSession(h Handle) {
	delete(d.cams, h)
	debug.Native("sim.ReleaseSession", StatusOK)
}

func (d *Sim) CaptureImage(h Handle, out *FilePath, cctx *Context) Status {
	cam, ok := d.cams[h]
	if !ok || !cam.initialized {
		return StatusBadParameters
	}
	cctx.Status("capturing")
	*out = cam.newShot()
	debug.Native("sim.CaptureImage", StatusOK)
	return StatusOK
}

func (d *Sim) TriggerCapture(h Handle, cctx *Context) Status {
	cam, ok := d.cams[h]
	if !ok || !cam.initialized {
		return StatusBadParameters
	}
	cctx.Status("capture triggered")
	// A real camera emits property-change noise before the file lands.
	cam.pending = append(cam.pending,
		simEvent{typ: EventUnknown, data: &EventData{Info: "PTP property 0xd1b0 changed"}},
	)
	shot := cam.newShot()
	cam.pending = append(cam.pending,
		simEvent{typ: EventFileAdded, data: &EventData{Path: shot}},
	)
	debug.Native("sim.TriggerCapture", StatusOK)
	return StatusOK
}

func (d *Sim) WaitForEvent(h Handle, timeoutMs int, cctx *Context) (EventType, *EventData, Status) {
	cam, ok := d.cams[h]
	if !ok || !cam.initialized {
		return EventUnknown, nil, StatusBadParameters
	}
	if len(cam.pending) > 0 {
		evt := cam.pending[0]
		cam.pending = cam.pending[1:]
		debug.Native("sim.WaitForEvent", StatusOK)
		return evt.typ, evt.data, StatusOK
	}
	// Nothing queued: burn the budget like the native layer would.
	time.Sleep(time.Duration(timeoutMs) * time.Millisecond)
	debug.Native("sim.WaitForEvent", StatusOK)
	return EventTimeout, nil, StatusOK
}

func (d *Sim) FreeEventData(data *EventData) {
	// Payloads are Go-owned here; the garbage collector does the work.
}

func (d *Sim) GetFile(h Handle, folder, name string, dst io.Writer, cctx *Context) Status {
	cam, ok := d.cams[h]
	if !ok || !cam.initialized {
		return StatusBadParameters
	}
	size, ok := cam.files[folder+"/"+name]
	if !ok {
		return StatusFileNotFound
	}
	cctx.Status("downloading %s", name)
	// Minimal JPEG framing around deterministic filler.
	body := make([]byte, size)
	copy(body, []byte{0xff, 0xd8, 0xff, 0xe0})
	for i := 4; i < size-2; i++ {
		body[i] = byte(i * 31)
	}
	body[size-2], body[size-1] = 0xff, 0xd9
	n, err := dst.Write(body)
	if err != nil || n != size {
		return StatusIO
	}
	cctx.Progress(int64(size), int64(size))
	debug.Native("sim.GetFile", StatusOK)
	return StatusOK
}

func (d *Sim) GetStorageInfo(h Handle, cctx *Context) ([]StorageInfo, Status) {
	cam, ok := d.cams[h]
	if !ok || !cam.initialized {
		return nil, StatusBadParameters
	}
	used := uint64(0)
	for _, size := range cam.files {
		used += uint64(size) / 1024
	}
	return []StorageInfo{{
		BaseDir:     "/store_00010001",
		Label:       "SIMCARD",
		Description: "simulated SD card",
		Kind:        StorageRemovableRAM,
		Access:      AccessReadWrite,
		CapacityKB:  32 * 1024 * 1024,
		FreeKB:      32*1024*1024 - used,
		FreeImages:  9999,
	}}, StatusOK
}

func (d *Sim) GetSummary(h Handle, buf *TextBuffer, cctx *Context) Status {
	cam, ok := d.cams[h]
	if !ok || !cam.initialized {
		return StatusBadParameters
	}
	text := fmt.Sprintf("Manufacturer: TetherGo\nModel: %s\nShots taken: %d\n", simModel, cam.shots)
	copy(buf[:TextMax-1], text)
	return StatusOK
}

func (d *Sim) GetManual(h Handle, buf *TextBuffer, cctx *Context) Status {
	// The simulated driver ships no manual, like most real drivers.
	return StatusNotSupported
}

func (d *Sim) GetAbout(h Handle, buf *TextBuffer, cctx *Context) Status {
	copy(buf[:TextMax-1], "Simulated PTP driver for tethergo development.\n")
	return StatusOK
}

func (d *Sim) GetAbilities(h Handle) (Abilities, Status) {
	if _, ok := d.cams[h]; !ok {
		return Abilities{}, StatusBadParameters
	}
	return Abilities{
		Model:    simModel,
		Maturity: MaturityTesting,
		Ops:      OpCaptureImage | OpTriggerCapture | OpConfig,
		FileOps:  FileDelete | FilePreview | FileExif,
	}, StatusOK
}

func (d *Sim) GetPortInfo(h Handle) (PortInfo, Status) {
	if _, ok := d.cams[h]; !ok {
		return PortInfo{}, StatusBadParameters
	}
	return PortInfo{Kind: PortUSB, Name: "Universal Serial Bus", Path: "usb:001,007"}, StatusOK
}

// newShot registers a fresh file on the virtual card and returns its
// location.
func (c *simCamera) newShot() FilePath {
	c.shots++
	name := fmt.Sprintf("IMG_%04d.JPG", c.shots)
	c.files[simFolder+"/"+name] = 64 * 1024
	return NewFilePath(simFolder, name)
}
