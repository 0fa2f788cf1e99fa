// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import "fmt"

// Params is an immutable descriptor of a CRC algorithm: width, polynomial,
// masks, and the two conventions (bit endianness, POSIX length suffix) that
// distinguish one algorithm from another. Params values are safe to share
// across goroutines and across Engines.
type Params struct {
	// NumBits is the width of the CRC register, a multiple of 8 in [8,64].
	NumBits int
	// Polynomial is the generator polynomial in normal (big-endian) form;
	// the implicit x^n term isn't stored.
	Polynomial uint64
	// InitialXOR preloads the raw register before any bytes are consumed.
	InitialXOR uint64
	// FinalXOR is applied to the raw register to produce the digest.
	FinalXOR uint64
	// BigEndian selects MSB-first shifting; otherwise the register is
	// LSB-first ("reflected").
	BigEndian bool
	// UseFileSize folds the little-endian minimal-byte-length encoding of
	// the total consumed byte count into the register before finalization
	// (the POSIX cksum(1) convention).
	UseFileSize bool
}

// NumBytes is the width of the CRC in bytes.
func (p *Params) NumBytes() int { return p.NumBits / 8 }

func (p *Params) mask() uint64 {
	if p.NumBits == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << p.NumBits) - 1
}

func (p *Params) validate() error {
	if p.NumBits <= 0 || p.NumBits%8 != 0 || p.NumBits > 64 {
		return fmt.Errorf("%w: num_bits must be a multiple of 8 in [8,64], got %d", ErrBadParams, p.NumBits)
	}
	return nil
}

// Engine is a stateful CRC calculator for one Params descriptor. Engines are
// short-lived, created per operation and reset as needed; they are not safe
// for concurrent use, unlike the Params/tables they read from.
type Engine struct {
	params   *Params
	table    *table
	raw      uint64
	consumed int64
}

// NewEngine builds the accelerator tables for params (or reuses cached ones)
// and returns a freshly reset Engine. It returns ErrBadParams if params.NumBits
// isn't a multiple of 8 in [8,64].
func NewEngine(params *Params) (*Engine, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		params: params,
		table:  tableFor(params.Polynomial, params.NumBits, params.BigEndian),
	}
	e.Reset()
	return e, nil
}

// MustNewEngine is like NewEngine but panics on invalid params. Intended for
// package-level preset initialization, not request-time use.
func MustNewEngine(params *Params) *Engine {
	e, err := NewEngine(params)
	if err != nil {
		panic(err)
	}
	return e
}

// Params returns the descriptor this engine was built from.
func (e *Engine) Params() *Params { return e.params }

// Reset rewinds the engine. With no argument semantics: call Reset() to
// return to params.InitialXOR, or ResetTo(v) to seed an arbitrary raw state
// (used by the patch solver to seed a reverse scan from a target register).
func (e *Engine) Reset() {
	e.raw = e.params.InitialXOR & e.params.mask()
	e.consumed = 0
}

// ResetTo seeds the engine with an arbitrary raw register value.
func (e *Engine) ResetTo(raw uint64) {
	e.raw = raw & e.params.mask()
	e.consumed = 0
}

// Raw returns the current running register value, before FinalXOR and any
// length-suffix fold.
func (e *Engine) Raw() uint64 { return e.raw }

// Update forward-consumes bytes, advancing the register.
func (e *Engine) Update(data []byte) {
	e.raw = e.forwardStep(e.raw, data)
	e.consumed += int64(len(data))
}

// UpdateReverse consumes bytes that come after the current point in the
// stream, retreating the register toward the earlier state that would have
// produced it. data is given in stream order, same as Update would expect;
// reverseStep walks it tail-first internally, since undoing a sequence of
// forward steps one byte at a time means undoing the most recent byte first.
func (e *Engine) UpdateReverse(data []byte) {
	e.raw = e.reverseStep(e.raw, data)
	e.consumed += int64(len(data))
}

func (e *Engine) forwardStep(v uint64, data []byte) uint64 {
	p := e.params
	mask := p.mask()
	if p.BigEndian {
		shift := uint(p.NumBits - 8)
		for _, b := range data {
			idx := byte((v>>shift)^uint64(b)) & 0xFF
			v = ((v << 8) & mask) ^ e.table.forward[idx]
		}
		return v
	}
	for _, b := range data {
		idx := byte(v^uint64(b)) & 0xFF
		v = (v >> 8) ^ e.table.forward[idx]
	}
	return v
}

func (e *Engine) reverseStep(v uint64, data []byte) uint64 {
	p := e.params
	mask := p.mask()
	shift := uint(p.NumBits - 8)
	if p.BigEndian {
		for i := len(data) - 1; i >= 0; i-- {
			lb := v & 0xFF
			v = (v >> 8) ^ e.table.reverse[lb] ^ ((lb ^ uint64(data[i])) << shift)
		}
		return v
	}
	for i := len(data) - 1; i >= 0; i-- {
		idx := byte(v>>shift) & 0xFF
		v = ((v << 8) & mask) ^ e.table.reverse[idx] ^ uint64(data[i])
	}
	return v
}

// Digest applies the length-suffix fold (if UseFileSize) and FinalXOR to the
// current raw register, without mutating engine state.
func (e *Engine) Digest() uint64 {
	v := e.raw
	if e.params.UseFileSize {
		v = e.forwardStep(v, minLEBytes(uint64(e.consumed)))
	}
	v ^= e.params.FinalXOR
	return v & e.params.mask()
}

// HexDigest renders Digest as uppercase hex, zero-padded to 2*NumBytes
// characters.
func (e *Engine) HexDigest() string {
	return fmt.Sprintf("%0*X", e.params.NumBytes()*2, e.Digest())
}
