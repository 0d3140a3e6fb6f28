package acquire

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// captureLogger returns a logger whose output can be inspected for warnings.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

type openCall struct {
	src Source
	api API
}

// fakeBackend hands out scripted handles in order; Open calls beyond the
// script fail with an error and no handle.
type fakeBackend struct {
	handles     []*fakeHandle
	calls       []openCall
	unsupported map[Property]bool
}

func (b *fakeBackend) Open(src Source, api API) (Handle, error) {
	b.calls = append(b.calls, openCall{src: src, api: api})
	if len(b.handles) == 0 {
		return nil, errors.New("no device")
	}
	h := b.handles[0]
	b.handles = b.handles[1:]
	return h, nil
}

func (b *fakeBackend) Supports(p Property) bool { return !b.unsupported[p] }

type fakeFrame struct{}

func (fakeFrame) Empty() bool { return false }

// fakeHandle scripts read results and records Set/Get traffic. Reads beyond
// the script fail, so readIdx counts every attempt.
type fakeHandle struct {
	opened    bool
	closed    int
	reads     []bool
	readIdx   int
	setOK     map[Property]bool
	setCalls  []Property
	setValues map[Property]float64
	getValues map[Property]float64
	fourCC    map[string]float64
}

// mjpgCode is "MJPG" packed little-endian, as OpenCV encodes fourcc.
const mjpgCode = float64(77 + 74<<8 + 80<<16 + 71<<24)

func newFakeHandle(opened bool, reads ...bool) *fakeHandle {
	return &fakeHandle{
		opened:    opened,
		reads:     reads,
		setOK:     map[Property]bool{},
		setValues: map[Property]float64{},
		getValues: map[Property]float64{},
		fourCC:    map[string]float64{"MJPG": mjpgCode},
	}
}

func (h *fakeHandle) IsOpened() bool { return h.opened }

func (h *fakeHandle) Read() (Frame, bool) {
	ok := h.readIdx < len(h.reads) && h.reads[h.readIdx]
	h.readIdx++
	if !ok {
		return nil, false
	}
	return fakeFrame{}, true
}

func (h *fakeHandle) Set(p Property, v float64) bool {
	h.setCalls = append(h.setCalls, p)
	h.setValues[p] = v
	return h.setOK[p]
}

func (h *fakeHandle) Get(p Property) (float64, bool) {
	v, ok := h.getValues[p]
	return v, ok
}

func (h *fakeHandle) EncodeFourCC(code string) (float64, bool) {
	v, ok := h.fourCC[code]
	return v, ok
}

func (h *fakeHandle) Close() error {
	h.closed++
	return nil
}
