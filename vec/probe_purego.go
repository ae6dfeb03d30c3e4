//go:build purego

package vec

const acceleratedBuild = false

func detectBackend() Backend {
	return Scalar
}
