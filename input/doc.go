// Package input supplies ready-made Input collaborators for
// github.com/hucsmn/lext: String, wrapping an in-memory string, and
// Reader, decoding UTF-8 one rune at a time from any io.Reader. Both
// are ordinary implementations of lext.Input; the engine itself
// neither knows nor cares which one it is driving.
package input
