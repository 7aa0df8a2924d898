//go:build darwin || linux

package haptics

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func open(library, symbol string) (*Native, error) {
	handle, err := purego.Dlopen(library, purego.RTLD_LAZY|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	n := &Native{
		close: func() error { return purego.Dlclose(handle) },
	}
	if !registerOptionalFunc(&n.pulse, handle, symbol) {
		purego.Dlclose(handle)
		return nil, fmt.Errorf("%w: symbol %s not found", ErrUnavailable, symbol)
	}
	registerOptionalFunc(&n.prepare, handle, symbol+"_prepare")
	return n, nil
}

// registerOptionalFunc attempts to register a function, reporting whether
// the symbol was found.
func registerOptionalFunc[T any](fn *T, handle uintptr, name string) (ok bool) {
	defer func() {
		// Recover from panic if symbol not found
		if recover() != nil {
			ok = false
		}
	}()
	purego.RegisterLibFunc(fn, handle, name)
	return true
}
