//go:build !linux

package secret

// allocate falls back to heap memory where mmap-based protection is not
// available. Contents are still zeroed on Close.
func allocate(size int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

func release([]byte, bool) error {
	return nil
}
