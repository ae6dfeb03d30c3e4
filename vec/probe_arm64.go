//go:build arm64 && !purego

package vec

import "golang.org/x/sys/cpu"

const acceleratedBuild = true

func detectBackend() Backend {
	if cpu.ARM64.HasASIMD {
		return WideAccel
	}
	return NarrowAccel
}
