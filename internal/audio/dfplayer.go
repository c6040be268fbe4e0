package audio

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// DFPlayer Mini serial command set (the subset this device uses).
const (
	cmdPlayTrack    = 0x03
	cmdSetVolume    = 0x06
	cmdReset        = 0x0C
	cmdQuerySDFiles = 0x48
)

// Frame layout: 7E FF 06 CMD FB ARGH ARGL CKH CKL EF, checksum is the
// two's complement of the sum of bytes 1..6.
const (
	frameStart = 0x7E
	frameEnd   = 0xEF
	frameVer   = 0xFF
	frameLen   = 0x06
	frameSize  = 10
)

const (
	// MaxVolume is the module's volume ceiling.
	MaxVolume = 30
	// resetDelay is how long the module needs after a reset command before
	// it answers queries (datasheet: 1.5-3s with an SD card inserted).
	resetDelay = 2 * time.Second
	replyWait  = 200 * time.Millisecond
)

// ErrNoStorage means the module came up but its SD card is absent or empty.
// Playback is the whole point of the product, so this is fatal at startup.
var ErrNoStorage = errors.New("audio: storage absent or empty")

// DFPlayer drives a DFPlayer-Mini-compatible MP3 module over a UART.
type DFPlayer struct {
	port  io.ReadWriter
	sleep func(time.Duration)
}

// Open connects to the module on portName (8N1, 9600 baud on stock modules)
// and runs the startup handshake: reset, settle, verify the SD card holds
// tracks. Any handshake failure is fatal to the caller.
func Open(portName string, baud int) (*DFPlayer, error) {
	mode := &serial.Mode{BaudRate: baud}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", portName, err)
	}
	if err := port.SetReadTimeout(replyWait); err != nil {
		port.Close()
		return nil, fmt.Errorf("audio: read timeout: %w", err)
	}

	d := New(port)
	if err := d.Handshake(); err != nil {
		port.Close()
		return nil, err
	}
	return d, nil
}

// New wraps an already-open port. Callers normally use Open; New exists for
// tests and for ports opened elsewhere.
func New(port io.ReadWriter) *DFPlayer {
	return &DFPlayer{port: port, sleep: time.Sleep}
}

// Handshake resets the module, waits out its boot time, then queries the SD
// file count. No reply means the module is absent; a zero count means the
// card is empty. Both are returned as errors.
func (d *DFPlayer) Handshake() error {
	if err := d.send(cmdReset, 0); err != nil {
		return err
	}
	d.sleep(resetDelay)

	n, err := d.query(cmdQuerySDFiles)
	if err != nil {
		return fmt.Errorf("audio: module not responding: %w", err)
	}
	if n == 0 {
		return ErrNoStorage
	}
	return nil
}

// Play requests playback of the numbered track. Fire-and-forget: the module
// gives no completion signal and a missing file for the index is silent.
func (d *DFPlayer) Play(track int) error {
	if track < 1 {
		return fmt.Errorf("audio: track %d out of range", track)
	}
	return d.send(cmdPlayTrack, uint16(track))
}

// SetVolume sets the output level 0..MaxVolume. Called once at startup.
func (d *DFPlayer) SetVolume(level int) error {
	if level < 0 || level > MaxVolume {
		return fmt.Errorf("audio: volume %d out of range [0,%d]", level, MaxVolume)
	}
	return d.send(cmdSetVolume, uint16(level))
}

func (d *DFPlayer) send(cmd byte, arg uint16) error {
	f := encodeFrame(cmd, arg)
	if _, err := d.port.Write(f); err != nil {
		return fmt.Errorf("audio: send cmd 0x%02X: %w", cmd, err)
	}
	return nil
}

// query sends cmd and parses the module's 10-byte reply for the 16-bit value.
func (d *DFPlayer) query(cmd byte) (uint16, error) {
	if err := d.send(cmd, 0); err != nil {
		return 0, err
	}

	buf := make([]byte, frameSize)
	got := 0
	for got < frameSize {
		n, err := d.port.Read(buf[got:])
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, errors.New("reply timeout")
		}
		got += n
	}
	return decodeReply(buf, cmd)
}

func encodeFrame(cmd byte, arg uint16) []byte {
	f := []byte{
		frameStart, frameVer, frameLen, cmd,
		0x00, // no ack requested
		byte(arg >> 8), byte(arg),
		0x00, 0x00,
		frameEnd,
	}
	ck := checksum(f)
	f[7] = byte(ck >> 8)
	f[8] = byte(ck)
	return f
}

func checksum(f []byte) uint16 {
	var sum uint16
	for _, b := range f[1:7] {
		sum += uint16(b)
	}
	return -sum
}

func decodeReply(f []byte, wantCmd byte) (uint16, error) {
	if f[0] != frameStart || f[9] != frameEnd {
		return 0, fmt.Errorf("garbled reply % X", f)
	}
	if ck := checksum(f); byte(ck>>8) != f[7] || byte(ck) != f[8] {
		return 0, fmt.Errorf("bad reply checksum % X", f)
	}
	if f[3] != wantCmd {
		return 0, fmt.Errorf("unexpected reply cmd 0x%02X", f[3])
	}
	return uint16(f[5])<<8 | uint16(f[6]), nil
}
