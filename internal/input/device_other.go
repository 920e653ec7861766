//go:build !(js && wasm)

package input

// IsTouchDevice reports whether touch controls should start enabled. Native
// builds wait for the first touch instead.
func IsTouchDevice() bool {
	return false
}
