//go:build !rrgraph_unchecked

package rrgraph

// checksEnabled turns on the handle checks done by every accessor. Build
// with -tags rrgraph_unchecked to drop them once the caller is trusted.
const checksEnabled = true
