package cli

// SetInteractiveAvailableForTest replaces the terminal check and returns a
// function restoring it.
func SetInteractiveAvailableForTest(f func() bool) func() {
	prev := interactiveAvailable
	interactiveAvailable = f
	return func() { interactiveAvailable = prev }
}
