// Command orrerydemo renders solar backdrop frames to PNG files.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/orrery"
)

func main() {
	var (
		width   = flag.Int("width", 800, "viewport width")
		height  = flag.Int("height", 600, "viewport height")
		ratio   = flag.Float64("ratio", 1, "device pixel ratio")
		frames  = flag.Int("frames", 1, "number of frames to render")
		step    = flag.Float64("step", 16.0, "milliseconds advanced per frame")
		reduced = flag.Bool("reduced", false, "honor a reduce-motion preference")
		backend = flag.String("backend", "", "force a specific backend (default: auto)")
		output  = flag.String("output", "orrery.png", "output file (frame index inserted for multiple frames)")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		orrery.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sched := &stepScheduler{}
	panel := &stderrPanel{}

	b := orrery.New(
		orrery.WithViewport(orrery.FixedViewport(*width, *height, *ratio)),
		orrery.WithMotionSignal(orrery.NewMotionSwitch(*reduced)),
		orrery.WithScheduler(sched),
		orrery.WithFallbackPanel(panel),
		orrery.WithBackend(*backend),
	)
	defer b.Close()

	if !b.Available() {
		os.Exit(1)
	}

	for i := 0; i < *frames; i++ {
		if i > 0 || !*reduced {
			// With reduce-motion set the construction already drew the
			// static frame; otherwise each frame is stepped explicitly.
			sched.fire(float64(i) * *step)
		}

		name := *output
		if *frames > 1 {
			name = fmt.Sprintf("%s.%04d.png", trimPNG(*output), i)
		}
		if err := b.Frame().SavePNG(name); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Frame saved to %s (%dx%d)\n", name, b.Frame().Width(), b.Frame().Height())
	}
}

func trimPNG(name string) string {
	const ext = ".png"
	if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
		return name[:len(name)-len(ext)]
	}
	return name
}

// stepScheduler fires frame callbacks only when the demo asks for them, so
// frame output is deterministic regardless of wall-clock timing.
type stepScheduler struct {
	next orrery.FrameHandle
	cb   func(now float64)
}

func (s *stepScheduler) Schedule(cb func(now float64)) orrery.FrameHandle {
	s.next++
	s.cb = cb
	return s.next
}

func (s *stepScheduler) Cancel(h orrery.FrameHandle) {
	if h == s.next {
		s.cb = nil
	}
}

func (s *stepScheduler) fire(now float64) {
	cb := s.cb
	s.cb = nil
	if cb != nil {
		cb(now)
	}
}

// stderrPanel prints the fallback message when the capability gate fails.
type stderrPanel struct{}

func (stderrPanel) Reveal(message string) {
	fmt.Fprintln(os.Stderr, message)
}
