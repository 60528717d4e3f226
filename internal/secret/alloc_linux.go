//go:build linux

package secret

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// allocate maps anonymous memory outside the Go heap and excludes it from
// core dumps. mlock is attempted; when RLIMIT_MEMLOCK is exhausted the
// region stays usable but unlocked.
func allocate(size int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, false, fmt.Errorf("secret: mmap failed: %w", err)
	}

	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		_ = unix.Munmap(data)
		return nil, false, fmt.Errorf("secret: madvise(MADV_DONTDUMP) failed: %w", err)
	}

	locked := true
	if err := unix.Mlock(data); err != nil {
		if !errors.Is(err, unix.ENOMEM) && !errors.Is(err, unix.EPERM) {
			_ = unix.Munmap(data)
			return nil, false, fmt.Errorf("secret: mlock failed: %w", err)
		}
		locked = false
	}

	return data, locked, nil
}

func release(data []byte, locked bool) error {
	var firstErr error
	if locked {
		if err := unix.Munlock(data); err != nil {
			firstErr = fmt.Errorf("secret: munlock failed: %w", err)
		}
	}
	if err := unix.Munmap(data); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("secret: munmap failed: %w", err)
	}
	return firstErr
}
