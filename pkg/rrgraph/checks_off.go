//go:build rrgraph_unchecked

package rrgraph

const checksEnabled = false
