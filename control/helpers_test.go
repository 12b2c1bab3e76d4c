package control

import (
	"io"
	"log/slog"
	"sync"

	"github.com/harveysanders/bitdoglab/matrix"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingStrip struct {
	mu     sync.Mutex
	pixels []matrix.Pixel
}

func (s *recordingStrip) Put(px matrix.Pixel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pixels = append(s.pixels, px)
}

// lastFrame returns the most recent full frame written to the strip.
func (s *recordingStrip) lastFrame() (matrix.Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var f matrix.Frame
	if len(s.pixels) < matrix.LEDCount {
		return f, false
	}
	copy(f[:], s.pixels[len(s.pixels)-matrix.LEDCount:])
	return f, true
}

func (s *recordingStrip) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pixels)
}
