package panel

import (
	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/event"
	"github.com/lixenwraith/sendama/input"
	"github.com/lixenwraith/sendama/render"
)

// Hierarchy lists the objects of the active scene
// Every mutation is followed by a HierarchyChanged publish
type Hierarchy struct {
	*Window
	event.Emitter

	objects []config.Object
	list    List
}

// NewHierarchy creates the hierarchy pane publishing on bus
func NewHierarchy(bus *event.Bus, x, y, w, h int) *Hierarchy {
	hp := &Hierarchy{Window: NewWindow("Hierarchy", x, y, w, h)}
	hp.Emitter = event.NewEmitter(bus, hp)
	return hp
}

// SetObjects replaces the scene objects and resets the selection
func (h *Hierarchy) SetObjects(objs []config.Object) {
	h.objects = append([]config.Object(nil), objs...)
	names := make([]string, len(h.objects))
	for i, o := range h.objects {
		names[i] = o.Name
	}
	h.list = List{}
	h.list.SetItems(names)
	h.notify()
}

// Objects returns a copy of the scene objects
func (h *Hierarchy) Objects() []config.Object {
	return append([]config.Object(nil), h.objects...)
}

// Selected returns the selected object, false when the scene is empty
func (h *Hierarchy) Selected() (config.Object, bool) {
	i := h.list.Selected()
	if i < 0 {
		return config.Object{}, false
	}
	return h.objects[i], true
}

// Select moves the selection by delta, publishing only on change
func (h *Hierarchy) Select(delta int) {
	if h.list.Move(delta) {
		h.notify()
	}
}

func (h *Hierarchy) notify() {
	payload := map[string]any{event.KeyCount: len(h.objects)}
	if obj, ok := h.Selected(); ok {
		payload[event.KeyObject] = obj
	}
	h.Notify(event.HierarchyChanged, payload)
}

// Update moves the selection with the vertical axis while focused
func (h *Hierarchy) Update(in Input) {
	if !h.IsFocused() {
		return
	}
	if v := in.GetAxis(input.AxisVertical); v != 0 {
		h.Select(v)
	}
}

func (h *Hierarchy) Render(s render.Surface) error {
	if !h.IsEnabled() {
		return nil
	}
	inner := h.Frame(s)
	if len(h.objects) == 0 {
		inner.Text(0, 0, "(empty scene)", render.StyleDim)
		return inner.Err()
	}
	h.list.Render(inner, h.IsFocused())
	return inner.Err()
}
