// Package input reads viewer keyboard commands from a raw-mode terminal.
package input

import "bufio"

// Input represents the commands pressed since the last read. The viewer is
// control-only, so keys are edge-triggered: each press is reported once.
type Input struct {
	Quit  bool // q or Ctrl-C
	Pause bool // space or p
	Step  bool // n (single tick while paused)
	Spawn bool // s
	Reset bool // r
}

// Stream delivers input bytes from a reader via a channel so reads never
// block the render loop.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The channel closes when the reader fails (disconnect).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes (non-blocking) and returns the
// commands they encode. Quit is reported when the stream closes.
func ReadInput(s *Stream) Input {
	var in Input
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				in.Quit = true
				return in
			}
			applyByte(&in, b)
		default:
			return in
		}
	}
}

func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', 0x03: // 0x03 is Ctrl-C in raw mode
		in.Quit = true
	case ' ', 'p', 'P':
		in.Pause = true
	case 'n', 'N':
		in.Step = true
	case 's', 'S':
		in.Spawn = true
	case 'r', 'R':
		in.Reset = true
	}
}
