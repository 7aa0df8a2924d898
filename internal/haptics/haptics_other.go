//go:build !darwin && !linux && !windows

package haptics

func open(library, symbol string) (*Native, error) {
	return nil, ErrUnavailable
}
