// Package ciphers plants caller text into pages.
//
// Each kept rune of the text, at natural alphabet index i, is replaced by the
// page symbol at (i + r) mod len(page alphabet), where r is the next index drawn
// from the content stream of the target coordinates. Runes outside the natural
// alphabet are dropped.
//
// The transform is one-way in practice. Recovering the text requires the
// coordinates, to replay the same draws, and a natural alphabet no longer than
// the page alphabet; otherwise distinct runes collide and Decipher reports
// ErrNotReversible. Titles are enciphered within the natural alphabet and can
// always be recovered from their coordinates.
package ciphers
