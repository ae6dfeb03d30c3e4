//go:build !amd64 && !arm64 && !purego

package vec

const acceleratedBuild = true

// Other architectures still have 64-bit registers for SWAR, but no probe
// worth trusting for wider blocks.
func detectBackend() Backend {
	return NarrowAccel
}
