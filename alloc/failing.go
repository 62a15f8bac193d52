package alloc

// Injector decides when allocations fail. A single Injector can drive
// several Failing allocators so list nodes and queue headers fail together.
type Injector struct {
	failNext  bool
	failAll   bool
	remaining int
	armed     bool
}

// FailNext makes the next allocation fail, then disarms itself.
func (in *Injector) FailNext() { in.failNext = true }

// FailAll makes every allocation fail until Reset or FailAll(false).
func (in *Injector) FailAll(on bool) { in.failAll = on }

// FailAfter lets n allocations succeed and fails every one after that.
func (in *Injector) FailAfter(n int) {
	in.remaining = n
	in.armed = true
}

// Reset disarms every trigger.
func (in *Injector) Reset() { *in = Injector{} }

func (in *Injector) shouldFail() bool {
	if in.failAll {
		return true
	}
	if in.failNext {
		in.failNext = false
		return true
	}
	if in.armed {
		if in.remaining == 0 {
			return true
		}
		in.remaining--
	}
	return false
}

// Failing consults an Injector before delegating to the wrapped allocator.
type Failing[T any] struct {
	inner    Allocator[T]
	injector *Injector
}

// NewFailing wraps inner. A nil injector gets a fresh, disarmed Injector.
func NewFailing[T any](inner Allocator[T], injector *Injector) *Failing[T] {
	if injector == nil {
		injector = &Injector{}
	}
	return &Failing[T]{inner: inner, injector: injector}
}

// Injector returns the trigger controlling this allocator.
func (f *Failing[T]) Injector() *Injector { return f.injector }

func (f *Failing[T]) Alloc() *T {
	if f.injector.shouldFail() {
		return nil
	}
	return f.inner.Alloc()
}

func (f *Failing[T]) Free(p *T) { f.inner.Free(p) }
