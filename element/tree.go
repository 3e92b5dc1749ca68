package element

import (
	"sort"

	"git.sr.ht/~rockorager/ly/value"
)

// AddChild appends child to the Element's children, detaching it from any
// previous parent
func (e *Element) AddChild(child *Element) {
	if child == nil || child == e {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child. It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c != child {
			continue
		}
		e.children = append(e.children[:i], e.children[i+1:]...)
		child.parent = nil
		return true
	}
	return false
}

// Children returns the Element's children in layout order
func (e *Element) Children() []*Element {
	children := make([]*Element, len(e.children))
	copy(children, e.children)
	return children
}

func (e *Element) Parent() *Element {
	return e.parent
}

// FindID returns the first Element with the given id, searching depth first
// starting with e itself
func (e *Element) FindID(id string) *Element {
	if e.ID == id {
		return e
	}
	for _, child := range e.children {
		if found := child.FindID(id); found != nil {
			return found
		}
	}
	return nil
}

// FindClass returns every Element in the subtree which has class, in depth
// first order
func (e *Element) FindClass(class string) []*Element {
	var found []*Element
	e.walk(func(el *Element) {
		if el.HasClass(class) {
			found = append(found, el)
		}
	})
	return found
}

func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, child := range e.children {
		child.walk(fn)
	}
}

func (e *Element) AddClass(classes ...string) {
	if e.classes == nil {
		e.classes = make(map[string]struct{})
	}
	for _, class := range classes {
		e.classes[class] = struct{}{}
	}
}

func (e *Element) HasClass(class string) bool {
	_, ok := e.classes[class]
	return ok
}

func (e *Element) RemoveClass(class string) {
	delete(e.classes, class)
}

// Classes returns the Element's classes in sorted order
func (e *Element) Classes() []string {
	classes := make([]string, 0, len(e.classes))
	for class := range e.classes {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

func (e *Element) SetAttr(key string, v value.Value) {
	if e.attrs == nil {
		e.attrs = make(map[string]value.Value)
	}
	e.attrs[key] = v
}

// Attr returns the attribute stored under key, or None
func (e *Element) Attr(key string) value.Value {
	return e.attrs[key]
}

// Attrs returns the attributes as a map Value
func (e *Element) Attrs() value.Value {
	return value.Map(e.attrs)
}
