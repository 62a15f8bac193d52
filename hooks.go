package linkedlist

import "github.com/metailurini/linkedlist/alloc"

// hooks are the process-wide node allocation hooks used by lists built
// without WithAllocator.
var hooks = alloc.NewHooks[Node]("linkedlist")

// RegisterAlloc installs the process-wide node allocate hook. The hook
// returns nil to report failure.
func RegisterAlloc(fn func() *Node) {
	hooks.RegisterAlloc(fn)
}

// RegisterFree installs the process-wide node release hook.
func RegisterFree(fn func(*Node)) {
	hooks.RegisterFree(fn)
}

// ResetHooks uninstalls both process-wide hooks.
func ResetHooks() {
	hooks.Reset()
}
