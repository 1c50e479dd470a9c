//go:build !unix

package scratch

// maxPathLen bounds assembled absolute paths. Windows caps classic paths at
// MAX_PATH (260) unless long-path support is opted into.
const maxPathLen = 260
