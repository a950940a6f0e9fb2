package sway

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const magic = "i3-ipc"

const headerLen = len(magic) + 8

// maxPayload bounds a single reply; trees of large sessions stay far below it.
const maxPayload = 64 << 20

type messageType uint32

const (
	msgRunCommand    messageType = 0
	msgGetWorkspaces messageType = 1
	msgSubscribe     messageType = 2
	msgGetTree       messageType = 4
	msgGetVersion    messageType = 7
)

// Event message types have the high bit set.
const eventBit messageType = 1 << 31

const (
	evWorkspace messageType = eventBit | 0
	evWindow    messageType = eventBit | 3
)

func (t messageType) isEvent() bool { return t&eventBit != 0 }

var errBadMagic = errors.New("sway: bad ipc magic")

func writeMessage(w io.Writer, t messageType, payload []byte) error {
	buf := make([]byte, headerLen+len(payload))
	copy(buf, magic)
	binary.LittleEndian.PutUint32(buf[len(magic):], uint32(len(payload)))
	binary.LittleEndian.PutUint32(buf[len(magic)+4:], uint32(t))
	copy(buf[headerLen:], payload)
	_, err := w.Write(buf)
	return err
}

func readMessage(r io.Reader) (messageType, []byte, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, err
	}
	if string(header[:len(magic)]) != magic {
		return 0, nil, errBadMagic
	}
	n := binary.LittleEndian.Uint32(header[len(magic):])
	t := messageType(binary.LittleEndian.Uint32(header[len(magic)+4:]))
	if n > maxPayload {
		return 0, nil, fmt.Errorf("sway: payload of %d bytes exceeds limit", n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, nil, err
	}
	return t, payload, nil
}
