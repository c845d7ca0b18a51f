//go:build !guilog_release

package guilog

// releaseMode strips every logging operation at build time when the
// guilog_release tag is set.
const releaseMode = false
