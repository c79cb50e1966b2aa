// Package scope provides a deferred-cleanup guard: a holder for one action
// that runs at most once when the surrounding scope ends, unless released
// first.
package scope

// Guard owns a single cleanup action. Arm it at acquisition time and defer
// Run immediately, so the action fires on every exit path:
//
//	g := scope.OnExit(func() { f.Close() })
//	defer g.Run()
//	...
//	g.Release() // ownership moved elsewhere, keep f open
//
// A Guard is single-goroutine state, like the resource it cleans up.
type Guard struct {
	fn func()
}

// OnExit returns a guard armed with fn.
func OnExit(fn func()) *Guard {
	return &Guard{fn: fn}
}

// Run invokes the stored action if the guard is still armed. The action
// runs at most once; later calls are no-ops. Run on a nil guard is a no-op.
func (g *Guard) Run() {
	if g == nil || g.fn == nil {
		return
	}
	fn := g.fn
	g.fn = nil
	fn()
}

// Release disarms the guard without running the action.
func (g *Guard) Release() {
	if g != nil {
		g.fn = nil
	}
}
