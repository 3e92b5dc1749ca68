// Package spinner is a one cell activity indicator driven by the frame
// counter
package spinner

import "git.sr.ht/~rockorager/ly"

// Model is a spinner. It shows one of its frames, advancing every Period
// ticks.
type Model struct {
	Foreground ly.Color
	Frames     []string
	// Period is the number of ticks each frame is shown for. Zero or
	// less means 1.
	Period int64

	tick int64
}

// New creates a new spinner
func New(period int64) *Model {
	return &Model{
		Frames: []string{"-", "\\", "|", "/"},
		Period: period,
	}
}

// Update records the current tick for use by Content
func (m *Model) Update(tick int64) {
	m.tick = tick
}

// Frame returns the frame shown at tick
func (m *Model) Frame(tick int64) string {
	if len(m.Frames) == 0 {
		return ""
	}
	period := m.Period
	if period < 1 {
		period = 1
	}
	i := (tick / period) % int64(len(m.Frames))
	if i < 0 {
		i += int64(len(m.Frames))
	}
	return m.Frames[i]
}

func (m *Model) RenderTick(buf ly.Buffer, tick int64) {
	w, h := buf.Size()
	if w < 1 || h < 1 {
		return
	}
	frame := m.Frame(tick)
	if frame == "" {
		return
	}
	cell := buf.Get(0, 0)
	cell.Glyph = frame
	if m.Foreground != 0 {
		cell.Foreground = m.Foreground
	}
}

func (m *Model) Content(buf ly.Buffer) {
	m.RenderTick(buf, m.tick)
}

func (m *Model) ContentWidth(ly.Buffer) int {
	return 1
}

func (m *Model) ContentHeight(ly.Buffer) int {
	return 1
}
