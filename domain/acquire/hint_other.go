//go:build !unix

package acquire

// Device-path sources are a Linux concept; elsewhere the permission probe
// never fires.
func canAccessDevice(string) bool { return true }
