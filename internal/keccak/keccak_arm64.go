// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nosimd

package keccak

const engineName = "batched"

func f1600x4(a *[100]uint64) {
	keccakF1600x4Contiguous(a)
}

func f1600x4Interleaved(a *[100]uint64) {
	keccakF1600x4Interleaved(a)
}
