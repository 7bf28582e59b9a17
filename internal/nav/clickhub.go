package nav

// ClickHub stands in for the document: it fans a "click landed somewhere"
// notification out to every subscriber. Handlers run in subscription order.
type ClickHub struct {
	next     int
	order    []int
	handlers map[int]func()
}

func NewClickHub() *ClickHub {
	return &ClickHub{handlers: make(map[int]func())}
}

// Subscribe registers fn and returns the func that removes it. Calling the
// release func more than once is harmless.
func (h *ClickHub) Subscribe(fn func()) (release func()) {
	id := h.next
	h.next++
	h.handlers[id] = fn
	h.order = append(h.order, id)
	return func() {
		if _, ok := h.handlers[id]; !ok {
			return
		}
		delete(h.handlers, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

// Click notifies all current subscribers.
func (h *ClickHub) Click() {
	for _, id := range append([]int(nil), h.order...) {
		if fn, ok := h.handlers[id]; ok {
			fn()
		}
	}
}

// Len returns the number of live subscriptions.
func (h *ClickHub) Len() int { return len(h.handlers) }
