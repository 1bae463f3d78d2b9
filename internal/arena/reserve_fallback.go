//go:build !unix

package arena

// reserve allocates the region from the Go heap when anonymous mappings are
// not available.
func reserve(size int) ([]byte, func() error, error) {
	region := make([]byte, size)
	return region, func() error { return nil }, nil
}
