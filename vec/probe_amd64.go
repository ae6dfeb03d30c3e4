//go:build amd64 && !purego

package vec

import "golang.org/x/sys/cpu"

const acceleratedBuild = true

func detectBackend() Backend {
	if cpu.X86.HasAVX2 {
		return WideAccel
	}
	return NarrowAccel
}
