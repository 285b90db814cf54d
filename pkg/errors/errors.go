// Package errors holds the sentinel errors shared by the cryptokit packages.
package errors

import "errors"

var (
	// Codec errors 🔤
	ErrUnknownCodec   = errors.New("❌ unknown codec")
	ErrDuplicateCodec = errors.New("❌ codec already registered")
	ErrEmptyChain     = errors.New("❌ empty codec chain")

	// Cipher errors 🔑
	ErrEmptyKey = errors.New("❌ empty cipher key")

	// Search errors 🔍
	ErrWorkerPanic = errors.New("❌ brute-force worker panicked")
	ErrNoCandidate = errors.New("❌ no candidate to search")

	// Input errors 📂
	ErrInputRead = errors.New("❌ failed to read input")
)
