// Package layout builds Element trees from YAML documents.
//
// A document is a mapping describing the root Element. The recognized keys
// are:
//
//	id          string
//	class       string of space separated classes, or a list of strings
//	text        string painted as the content
//	spinner     ticks per frame of a spinner painted as the content
//	border      true, "ascii" or "rounded" to frame the element
//	fg, bg      color names or "#rrggbb"
//	margin      unit, or a map of left, top, right, bottom, x and y
//	padding     same as margin
//	width       unit
//	height      unit
//	transparent bool
//	children    list of documents
//
// A unit is an integer number of cells, a fraction between 0 and 1, a
// percentage such as "50%" or "auto". Every other key is stored as an
// attribute of the Element.
package layout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~rockorager/ly"
	"git.sr.ht/~rockorager/ly/element"
	"git.sr.ht/~rockorager/ly/value"
	"git.sr.ht/~rockorager/ly/widgets/border"
	"git.sr.ht/~rockorager/ly/widgets/spinner"
	"git.sr.ht/~rockorager/ly/widgets/text"
	"gopkg.in/yaml.v3"
)

// SpinnerClass is added to every Element built with a spinner so the spinners
// can be found and updated each tick
const SpinnerClass = "spinner"

// LoadFile reads the layout at path
func LoadFile(path string) (*element.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a YAML layout from r. An empty document yields an empty root.
func Load(r io.Reader) (*element.Element, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return element.NewRoot(), nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		return element.NewRoot(), nil
	}
	v, err := value.FromAny(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return Build(v)
}

// Build creates the Element described by v, which must be a map
func Build(v value.Value) (*element.Element, error) {
	return build(v, "root")
}

func build(v value.Value, path string) (*element.Element, error) {
	if !v.IsMap() {
		return nil, fmt.Errorf("%s: %w: element must be a map, not %s", path, value.ErrWrongKind, v.Kind())
	}
	b := builder{el: element.New("", nil), path: path}
	keys, _ := v.Keys()
	for _, key := range keys {
		entry, _ := v.Get(key)
		err := b.set(key, entry)
		switch {
		case err == nil:
		case key == "children":
			// already carries the path of the failing child
			return nil, err
		default:
			return nil, fmt.Errorf("%s.%s: %w", path, key, err)
		}
	}
	if err := b.finish(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b.el, nil
}

type builder struct {
	el   *element.Element
	path string

	text       *text.Text
	spinner    *spinner.Model
	border     *border.Block
	hasPadding bool
}

func (b *builder) set(key string, v value.Value) error {
	var err error
	switch key {
	case "id":
		b.el.ID, err = v.AsString()
	case "class":
		err = b.classes(v)
	case "text":
		var s string
		s, err = v.AsString()
		b.text = text.New(s)
	case "spinner":
		var period int64
		period, err = v.AsInt()
		b.spinner = spinner.New(period)
	case "border":
		err = b.setBorder(v)
	case "fg", "bg":
		var s string
		s, err = v.AsString()
		if err != nil {
			return err
		}
		if _, err := ly.ParseColor(s); err != nil {
			return err
		}
		b.el.SetAttr(key, v)
	case "margin":
		b.el.Margin, err = element.ParseEdges(v)
	case "padding":
		b.el.Padding, err = element.ParseEdges(v)
		b.hasPadding = true
	case "width":
		b.el.Width, err = element.ParseUnit(v)
	case "height":
		b.el.Height, err = element.ParseUnit(v)
	case "transparent":
		b.el.Transparent, err = v.AsBool()
	case "children":
		err = b.children(v)
	default:
		b.el.SetAttr(key, v)
	}
	return err
}

func (b *builder) classes(v value.Value) error {
	if v.IsString() {
		s, _ := v.AsString()
		b.el.AddClass(strings.Fields(s)...)
		return nil
	}
	list, err := v.AsArray()
	if err != nil {
		return err
	}
	for i, class := range list {
		s, err := class.AsString()
		if err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
		b.el.AddClass(s)
	}
	return nil
}

func (b *builder) setBorder(v value.Value) error {
	if v.IsBool() {
		on, _ := v.AsBool()
		if on {
			b.border = &border.Block{}
		}
		return nil
	}
	s, err := v.AsString()
	if err != nil {
		return err
	}
	switch s {
	case "ascii":
		b.border = &border.Block{Glyphs: &border.ASCII}
	case "rounded":
		b.border = &border.Block{Glyphs: &border.Rounded}
	default:
		return fmt.Errorf("unknown border %q", s)
	}
	return nil
}

func (b *builder) children(v value.Value) error {
	list, err := v.AsArray()
	if err != nil {
		return fmt.Errorf("%s.children: %w", b.path, err)
	}
	for i, entry := range list {
		child, err := build(entry, fmt.Sprintf("%s.children[%d]", b.path, i))
		if err != nil {
			return err
		}
		b.el.AddChild(child)
	}
	return nil
}

// finish applies the settings which depend on more than one key
func (b *builder) finish() error {
	switch {
	case b.text != nil && b.spinner != nil:
		return errors.New("text and spinner are exclusive")
	case b.text != nil:
		b.el.SetContent(b.text)
	case b.spinner != nil:
		b.el.SetContent(b.spinner)
		b.el.AddClass(SpinnerClass)
	}
	if b.border != nil {
		if s, err := b.el.Attr("fg").AsString(); err == nil {
			b.border.Foreground, _ = ly.ParseColor(s)
		}
		b.el.Decoration = b.border
		if !b.hasPadding {
			b.el.Padding = element.Uniform(element.Absolute(1))
		}
	}
	return nil
}
