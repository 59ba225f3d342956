// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package caesar

// AlphabetSize is the number of letters in each case alphabet.
const AlphabetSize = 26

// Normalize folds shift into [0, AlphabetSize). Rotating by the result is the
// same as rotating by shift.
func Normalize(shift int) int {
	return ((shift % AlphabetSize) + AlphabetSize) % AlphabetSize
}

// Rotate shifts c within its case alphabet. Bytes that are not ASCII letters
// are returned unchanged.
func Rotate(c byte, shift int) byte {
	return rotate(c, byte(Normalize(shift)))
}

// rotate expects offset to be normalized already, so at most one wrap can
// happen.
func rotate(c, offset byte) byte {
	switch {
	case 'a' <= c && c <= 'z':
		c += offset
		if c > 'z' {
			c -= AlphabetSize
		}
	case 'A' <= c && c <= 'Z':
		c += offset
		if c > 'Z' {
			c -= AlphabetSize
		}
	}
	return c
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Eligible reports whether cluster is a single ASCII letter.
func Eligible(cluster []byte) bool {
	return len(cluster) == 1 && isLetter(cluster[0])
}

// ascii backs the one-byte clusters RotateCluster returns.
var ascii = func() (a [128]byte) {
	for i := range a {
		a[i] = byte(i)
	}
	return
}()

// RotateCluster returns the rotated form of cluster. offset must already be
// normalized. Clusters that are not Eligible are returned as-is. The result
// may share memory with cluster or with package state and must not be
// modified.
func RotateCluster(cluster []byte, offset int) []byte {
	if !Eligible(cluster) {
		return cluster
	}
	r := rotate(cluster[0], byte(offset))
	return ascii[r : r+1 : r+1]
}
