package game

// Observer is told about every change to the game, typically to redraw it
type Observer func(g *Game)

type subscription struct {
	id int
	fn Observer
}

type observers struct {
	nextID int
	subs   []subscription
}

func (o *observers) add(fn Observer) int {
	o.nextID++
	o.subs = append(o.subs, subscription{id: o.nextID, fn: fn})
	return o.nextID
}

func (o *observers) remove(id int) {
	for i, s := range o.subs {
		if s.id == id {
			o.subs = append(o.subs[:i], o.subs[i+1:]...)
			return
		}
	}
}

// Subscribe registers fn to be called after every state change, in
// subscription order. The returned func unsubscribes it.
func (g *Game) Subscribe(fn Observer) (unsubscribe func()) {
	id := g.observers.add(fn)
	return func() {
		g.observers.remove(id)
	}
}

func (g *Game) notify() {
	subs := make([]subscription, len(g.observers.subs))
	copy(subs, g.observers.subs)
	for _, s := range subs {
		s.fn(g)
	}
}
