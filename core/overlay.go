package core

// OverlayContent holds typed overlay data, extensible via OverlayItem interface
type OverlayContent struct {
	Title string
	Items []OverlayItem
}

// OverlayItem is implemented by all overlay component types
type OverlayItem interface {
	overlayItem() // sealed marker
}

// OverlayLine is a single preformatted row, e.g. "FPS: 60, Delta: 0.0167"
type OverlayLine struct {
	Text string
}

func (OverlayLine) overlayItem() {}

// OverlayCard displays a titled box with key-value entries
type OverlayCard struct {
	Title   string
	Entries []CardEntry
}

func (OverlayCard) overlayItem() {}

// CardEntry is a single key-value pair within a card
type CardEntry struct {
	Key   string
	Value string
}

// Add appends items and returns the content for chaining
func (c *OverlayContent) Add(items ...OverlayItem) *OverlayContent {
	c.Items = append(c.Items, items...)
	return c
}

// Lines flattens the content into display rows
// Cards render as their title followed by "  key: value" rows
func (c *OverlayContent) Lines() []string {
	if c == nil {
		return nil
	}
	var lines []string
	if c.Title != "" {
		lines = append(lines, c.Title)
	}
	for _, item := range c.Items {
		switch it := item.(type) {
		case OverlayLine:
			lines = append(lines, it.Text)
		case OverlayCard:
			lines = append(lines, it.Title)
			for _, e := range it.Entries {
				lines = append(lines, "  "+e.Key+": "+e.Value)
			}
		}
	}
	return lines
}

// Cards extracts all OverlayCard items from content
func (c *OverlayContent) Cards() []OverlayCard {
	if c == nil {
		return nil
	}
	var cards []OverlayCard
	for _, item := range c.Items {
		if card, ok := item.(OverlayCard); ok {
			cards = append(cards, card)
		}
	}
	return cards
}
