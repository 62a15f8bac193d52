package queue

import "github.com/metailurini/linkedlist/alloc"

var hooks = alloc.NewHooks[Queue]("queue")

// RegisterAlloc installs the process-wide queue allocate hook. The hook
// returns nil to report failure. Node allocation for the backing list goes
// through the linkedlist hooks, which may be wired to the same strategy.
func RegisterAlloc(fn func() *Queue) {
	hooks.RegisterAlloc(fn)
}

// RegisterFree installs the process-wide queue release hook.
func RegisterFree(fn func(*Queue)) {
	hooks.RegisterFree(fn)
}

// ResetHooks uninstalls both process-wide hooks.
func ResetHooks() {
	hooks.Reset()
}
