//go:build guilog_release

package guilog

// releaseMode strips every logging operation at build time when the
// guilog_release tag is set. Arguments at call sites are still evaluated,
// but nothing is formatted, no sink is constructed, and no console is ever
// touched.
const releaseMode = true
