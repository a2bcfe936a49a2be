//go:build !darwin

package debug

const rssInBytes = false
