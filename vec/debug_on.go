//go:build editdist_debug

package vec

const debugAssertions = true
