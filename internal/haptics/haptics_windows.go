//go:build windows

package haptics

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func open(library, symbol string) (*Native, error) {
	dll, err := windows.LoadDLL(library)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadDLL failed: %v", ErrUnavailable, err)
	}

	proc, err := dll.FindProc(symbol)
	if err != nil {
		dll.Release()
		return nil, fmt.Errorf("%w: symbol %s not found", ErrUnavailable, symbol)
	}

	n := &Native{
		pulse: func(style int32) { proc.Call(uintptr(style)) },
		close: dll.Release,
	}
	if prep, err := dll.FindProc(symbol + "_prepare"); err == nil {
		n.prepare = func() { prep.Call() }
	}
	return n, nil
}
