package element

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"git.sr.ht/~rockorager/ly/value"
)

type unitKind uint8

const (
	auto unitKind = iota
	absolute
	relative
)

// Unit is a length along one axis: a number of cells, a fraction of the
// available space, or Auto. The zero value is Auto.
type Unit struct {
	kind unitKind
	n    int
	f    float64
}

// Absolute returns a Unit of n cells
func Absolute(n int) Unit {
	return Unit{kind: absolute, n: n}
}

// Relative returns a Unit which is the fraction f of the available space
func Relative(f float64) Unit {
	return Unit{kind: relative, f: f}
}

// Auto returns the Auto unit. As an edge it is zero. As a width or height it
// takes whatever space remains.
func Auto() Unit {
	return Unit{}
}

func (u Unit) IsAuto() bool {
	return u.kind == auto
}

// Resolve returns the number of cells u represents out of dim. Relative units
// are floored. The result is never negative.
func (u Unit) Resolve(dim int) int {
	var n int
	switch u.kind {
	case absolute:
		n = u.n
	case relative:
		n = int(math.Floor(u.f * float64(dim)))
	}
	if n < 0 {
		return 0
	}
	return n
}

func (u Unit) String() string {
	switch u.kind {
	case absolute:
		return strconv.Itoa(u.n)
	case relative:
		return strconv.FormatFloat(u.f*100, 'f', -1, 64) + "%"
	}
	return "auto"
}

// ParseUnit converts a Value into a Unit. None and "auto" are Auto, integers
// are Absolute, floats between 0 and 1 and strings such as "50%" are
// Relative.
func ParseUnit(v value.Value) (Unit, error) {
	switch v.Kind() {
	case value.KindNone:
		return Auto(), nil
	case value.KindInt:
		n, _ := v.AsInt()
		return Absolute(int(n)), nil
	case value.KindFloat:
		f, _ := v.AsFloat()
		if f < 0 || f > 1 {
			return Unit{}, fmt.Errorf("relative unit %v out of range [0,1]", f)
		}
		return Relative(f), nil
	case value.KindString:
		s, _ := v.AsString()
		return parseUnitString(s)
	}
	return Unit{}, fmt.Errorf("%w: %s is not a unit", value.ErrWrongKind, v.Kind())
}

func parseUnitString(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "auto":
		return Auto(), nil
	case strings.HasSuffix(s, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Unit{}, fmt.Errorf("invalid unit %q: %w", s, err)
		}
		if pct < 0 || pct > 100 {
			return Unit{}, fmt.Errorf("relative unit %q out of range", s)
		}
		return Relative(pct / 100), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Unit{}, fmt.Errorf("invalid unit %q: %w", s, err)
	}
	return Absolute(n), nil
}

// Edges holds a Unit for each side of a box
type Edges struct {
	Left   Unit
	Top    Unit
	Right  Unit
	Bottom Unit
}

// Uniform returns Edges with u on every side
func Uniform(u Unit) Edges {
	return Edges{
		Left:   u,
		Top:    u,
		Right:  u,
		Bottom: u,
	}
}

// Insets are resolved Edges, in cells
type Insets struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Resolve resolves the left and right edges against width and the top and
// bottom edges against height
func (e Edges) Resolve(width int, height int) Insets {
	return Insets{
		Left:   e.Left.Resolve(width),
		Top:    e.Top.Resolve(height),
		Right:  e.Right.Resolve(width),
		Bottom: e.Bottom.Resolve(height),
	}
}

// Fits reports whether the insets leave at least one cell in each direction
// of a width x height box
func (i Insets) Fits(width int, height int) bool {
	return i.Left+i.Right < width && i.Top+i.Bottom < height
}

// ParseEdges converts a Value into Edges. A single unit applies to every
// side. A map may name any of left, top, right and bottom, plus x and y as
// shorthands for both horizontal or both vertical sides.
func ParseEdges(v value.Value) (Edges, error) {
	if !v.IsMap() {
		u, err := ParseUnit(v)
		if err != nil {
			return Edges{}, err
		}
		return Uniform(u), nil
	}
	keys, _ := v.Keys()
	for _, key := range keys {
		if _, ok := edgeKeys[key]; !ok {
			return Edges{}, fmt.Errorf("unknown edge %q", key)
		}
	}
	e := Edges{}
	// shorthands first so that a named side wins
	for _, key := range []string{"x", "y", "left", "top", "right", "bottom"} {
		entry, _ := v.Get(key)
		if entry.IsNone() {
			continue
		}
		u, err := ParseUnit(entry)
		if err != nil {
			return Edges{}, fmt.Errorf("%s: %w", key, err)
		}
		for _, side := range edgeKeys[key](&e) {
			*side = u
		}
	}
	return e, nil
}

var edgeKeys = map[string]func(*Edges) []*Unit{
	"x":      func(e *Edges) []*Unit { return []*Unit{&e.Left, &e.Right} },
	"y":      func(e *Edges) []*Unit { return []*Unit{&e.Top, &e.Bottom} },
	"left":   func(e *Edges) []*Unit { return []*Unit{&e.Left} },
	"top":    func(e *Edges) []*Unit { return []*Unit{&e.Top} },
	"right":  func(e *Edges) []*Unit { return []*Unit{&e.Right} },
	"bottom": func(e *Edges) []*Unit { return []*Unit{&e.Bottom} },
}
