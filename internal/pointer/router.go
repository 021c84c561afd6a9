package pointer

// Router routes pointer events to handlers, honoring captures. The zero
// value is not usable; create one with NewRouter.
type Router struct {
	captures map[ID]Handler
}

// NewRouter returns a router with no captures.
func NewRouter() *Router {
	return &Router{captures: make(map[ID]Handler)}
}

// Capture gives h exclusive delivery of events for id. It fails when
// another handler already holds id. Capturing an id h already holds
// succeeds.
func (r *Router) Capture(id ID, h Handler) bool {
	if owner, ok := r.captures[id]; ok {
		return owner == h
	}
	r.captures[id] = h
	return true
}

// Release drops the capture of id if h holds it.
func (r *Router) Release(id ID, h Handler) {
	if owner, ok := r.captures[id]; ok && owner == h {
		delete(r.captures, id)
	}
}

// Captured returns the handler holding id, if any.
func (r *Router) Captured(id ID) (Handler, bool) {
	h, ok := r.captures[id]
	return h, ok
}

// Dispatch delivers e. A captured id goes to its owner; otherwise hit is
// asked for the handler under the pointer. A nil hit result drops the
// event.
func (r *Router) Dispatch(e Event, hit func(Point) Handler) {
	if owner, ok := r.captures[e.ID]; ok {
		owner.HandlePointer(e)
		return
	}
	if hit == nil {
		return
	}
	if h := hit(e.Pos); h != nil {
		h.HandlePointer(e)
	}
}

// Cancel removes the capture of id and tells its former owner.
func (r *Router) Cancel(id ID) {
	owner, ok := r.captures[id]
	if !ok {
		return
	}
	delete(r.captures, id)
	owner.HandlePointer(Event{ID: id, Kind: Cancel})
}

// Forget cancels every capture held by h. Call it when h goes away so no
// pointer stays captured by a handler that can no longer release it.
func (r *Router) Forget(h Handler) {
	for id, owner := range r.captures {
		if owner == h {
			delete(r.captures, id)
			owner.HandlePointer(Event{ID: id, Kind: Cancel})
		}
	}
}

// Len returns the number of captured pointers.
func (r *Router) Len() int {
	return len(r.captures)
}
