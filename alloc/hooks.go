package alloc

// Hooks is a process-wide pair of allocation hooks shared by every instance
// of one type. Both hooks are meant to be installed once, before the first
// instance is constructed. Using an unregistered slot is a programmer error
// and panics.
//
// Hooks is not safe for concurrent registration.
type Hooks[T any] struct {
	name      string
	allocFunc func() *T
	freeFunc  func(*T)
}

// NewHooks returns an empty slot pair. name is used in panic messages.
func NewHooks[T any](name string) *Hooks[T] {
	return &Hooks[T]{name: name}
}

// RegisterAlloc installs the allocate hook. Registering again replaces it.
func (h *Hooks[T]) RegisterAlloc(fn func() *T) {
	h.allocFunc = fn
}

// RegisterFree installs the release hook. Registering again replaces it.
func (h *Hooks[T]) RegisterFree(fn func(*T)) {
	h.freeFunc = fn
}

// Registered reports whether both hooks are installed.
func (h *Hooks[T]) Registered() bool {
	return h.allocFunc != nil && h.freeFunc != nil
}

// Reset uninstalls both hooks.
func (h *Hooks[T]) Reset() {
	h.allocFunc = nil
	h.freeFunc = nil
}

func (h *Hooks[T]) Alloc() *T {
	if h.allocFunc == nil {
		panic(h.name + ": allocate hook not registered")
	}
	return h.allocFunc()
}

func (h *Hooks[T]) Free(p *T) {
	if h.freeFunc == nil {
		panic(h.name + ": release hook not registered")
	}
	h.freeFunc(p)
}
