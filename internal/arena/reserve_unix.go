//go:build unix

package arena

import (
	"errors"

	"golang.org/x/sys/unix"
)

// reserve maps an anonymous, private, read-write region of the given size.
func reserve(size int) ([]byte, func() error, error) {
	region, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		err := unix.Munmap(region)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return region, release, nil
}
