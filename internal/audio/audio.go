// Package audio plays letter-name tracks from a serial MP3 module.
package audio

// Player is the playback channel used by the tutor. Play is fire-and-forget:
// it returns as soon as the request is on the wire, with no completion signal.
// Track numbering: 1..26 are the letters A..Z, 27 is the introduction.
type Player interface {
	Play(track int) error
	SetVolume(level int) error
}
