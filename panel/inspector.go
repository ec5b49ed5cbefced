package panel

import (
	"fmt"

	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/event"
	"github.com/lixenwraith/sendama/render"
)

// Inspector shows the fields of the object selected in the hierarchy
type Inspector struct {
	*Window
	subID string
	bus   *event.Bus
}

// NewInspector creates the inspector pane and subscribes it for the editor instance lifetime
func NewInspector(bus *event.Bus, x, y, w, h int) *Inspector {
	in := &Inspector{Window: NewWindow("Inspector", x, y, w, h), bus: bus}
	if bus != nil {
		in.subID = bus.Subscribe(in, event.ScopeInstance, event.HierarchyChanged)
	}
	in.show(nil)
	return in
}

// OnNotify refreshes the content from a HierarchyChanged payload
func (in *Inspector) OnNotify(ev event.Event) {
	if ev.Type != event.HierarchyChanged {
		return
	}
	v, _ := ev.Get(event.KeyObject)
	obj, ok := v.(config.Object)
	if !ok {
		in.show(nil)
		return
	}
	in.show(&obj)
}

// Close drops the subscription
func (in *Inspector) Close() {
	if in.bus != nil && in.subID != "" {
		in.bus.UnsubscribeID(in.subID)
		in.subID = ""
	}
}

func (in *Inspector) show(obj *config.Object) {
	if obj == nil {
		in.Lines = []string{"Nothing selected"}
		return
	}
	in.Lines = []string{
		"Name:     " + obj.Name,
		"Tag:      " + obj.Tag,
		"",
		"Transform",
		fmt.Sprintf("  Position: %d, %d", obj.Position[0], obj.Position[1]),
		fmt.Sprintf("  Rotation: %d, %d", obj.Rotation[0], obj.Rotation[1]),
		fmt.Sprintf("  Scale:    %d, %d", obj.Scale[0], obj.Scale[1]),
	}
}

func (in *Inspector) Render(s render.Surface) error {
	if !in.IsEnabled() {
		return nil
	}
	inner := in.Frame(s)
	for i, l := range in.Lines {
		style := render.StyleNormal
		if l == "Transform" {
			style = render.StyleAccent
		}
		inner.Text(0, i, l, style)
	}
	return inner.Err()
}
