//go:build !unix

package layoutfile

// lockPath is a no-op where flock is unavailable.
func lockPath(string, bool) (func(), error) {
	return func() {}, nil
}
