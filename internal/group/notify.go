package group

import (
	"slices"

	"splitpane/internal/layout"
)

// Subscribe registers fn to receive every committed layout. It returns a
// function that removes the subscription.
func (g *Group) Subscribe(fn func(layout.Layout)) func() {
	id := g.nextSub
	g.nextSub++
	g.subscribers = append(g.subscribers, subscriber{id: id, fn: fn})
	return func() {
		g.subscribers = slices.DeleteFunc(g.subscribers, func(s subscriber) bool { return s.id == id })
	}
}

type subscriber struct {
	id int
	fn func(layout.Layout)
}

func (g *Group) notifySubscribers() {
	for _, s := range slices.Clone(g.subscribers) {
		s.fn(g.layout.Clone())
	}
}

// notifyPanes fires pane callbacks for every pane whose size changed since
// it was last notified.
func (g *Group) notifyPanes() {
	panes, sizes := slices.Clone(g.panes), g.layout
	for i, p := range panes {
		if i >= len(sizes) {
			break
		}
		size := sizes[i]
		prev, hasPrev := g.lastNotified[p.ID]
		if hasPrev && prev == size {
			continue
		}
		g.lastNotified[p.ID] = size

		cb := p.Callbacks
		if cb.OnResize != nil {
			cb.OnResize(ResizeEvent{Size: size, PrevSize: prev, HasPrev: hasPrev})
		}

		c := p.Constraints.Normalized()
		if !c.Collapsible {
			continue
		}
		collapsed := layout.Equal(size, c.CollapsedSize)
		wasCollapsed := hasPrev && layout.Equal(prev, c.CollapsedSize)

		if cb.OnExpand != nil && !collapsed && (!hasPrev || wasCollapsed) {
			cb.OnExpand()
		}
		if cb.OnCollapse != nil && collapsed && (!hasPrev || !wasCollapsed) {
			cb.OnCollapse()
		}
	}
}
