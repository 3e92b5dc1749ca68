package element

import (
	"testing"

	"git.sr.ht/~rockorager/ly/value"
	"github.com/stretchr/testify/assert"
)

func TestAddRemoveChild(t *testing.T) {
	a := New("a", nil)
	b := New("b", nil)
	child := New("child", nil)

	a.AddChild(child)
	assert.Same(t, a, child.Parent())
	assert.Len(t, a.Children(), 1)

	b.AddChild(child)
	assert.Same(t, b, child.Parent())
	assert.Empty(t, a.Children())
	assert.Len(t, b.Children(), 1)

	assert.True(t, b.RemoveChild(child))
	assert.Nil(t, child.Parent())
	assert.False(t, b.RemoveChild(child))

	a.AddChild(a)
	assert.Empty(t, a.Children())
}

func TestChildrenIsACopy(t *testing.T) {
	root := NewRoot()
	root.AddChild(New("a", nil))
	children := root.Children()
	children[0] = nil
	assert.NotNil(t, root.Children()[0])
}

func TestFindID(t *testing.T) {
	root := New("root", nil)
	first := New("dup", nil)
	second := New("dup", nil)
	inner := New("inner", nil)
	first.AddChild(inner)
	root.AddChild(first)
	root.AddChild(second)

	assert.Same(t, root, root.FindID("root"))
	assert.Same(t, first, root.FindID("dup"))
	assert.Same(t, inner, root.FindID("inner"))
	assert.Nil(t, root.FindID("missing"))

	// search begins with the receiver
	self := New("inner", nil)
	self.AddChild(New("inner", nil))
	assert.Same(t, self, self.FindID("inner"))
}

func TestClasses(t *testing.T) {
	root := NewRoot()
	a := New("a", nil)
	b := New("b", nil)
	c := New("c", nil)
	a.AddChild(c)
	root.AddChild(a)
	root.AddChild(b)

	a.AddClass("panel", "left")
	c.AddClass("panel")
	assert.True(t, a.HasClass("left"))
	assert.Equal(t, []string{"left", "panel"}, a.Classes())
	assert.Equal(t, []*Element{a, c}, root.FindClass("panel"))

	a.RemoveClass("panel")
	assert.Equal(t, []*Element{c}, root.FindClass("panel"))
	assert.Empty(t, root.FindClass("missing"))

	var zero Element
	zero.AddClass("x")
	assert.True(t, zero.HasClass("x"))
}

func TestAttributes(t *testing.T) {
	el := New("x", nil)
	assert.True(t, el.Attr("missing").IsNone())

	el.SetAttr("count", value.Int(2))
	assert.True(t, el.Attr("count").Equal(value.Int(2)))

	n, err := el.Attrs().Len()
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	var zero Element
	zero.SetAttr("k", value.Bool(true))
	assert.True(t, zero.Attr("k").Equal(value.Bool(true)))
}
