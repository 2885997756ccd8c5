package assoc

import (
	"fmt"
	"sync"
)

// MacroFunc is the function signature for a registered macro. It receives
// the Array the macro was called on and the caller's arguments.
type MacroFunc func(a *Array, args ...any) any

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry, replacing any
// macro already registered under name. Safe to call from multiple
// goroutines.
//
//	assoc.RegisterMacro("sum", func(a *assoc.Array, _ ...any) any {
//	    return a.Reduce(func(c, v any) any { return c.(int) + v.(int) }, 0)
//	})
//
//	total, _ := assoc.MustNew([]int{1, 2, 3}).Macro("sum") // 6
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with a and args.
// Returns (nil, ErrMacroNotFound) if no macro is registered under name.
func CallMacro(name string, a *Array, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(a, args...), nil
}

// Macro calls the named registered macro on a, forwarding args.
func (a *Array) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, a, args...)
}
