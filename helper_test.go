// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx_test

import (
	"errors"

	"code.hybscloud.com/atomix"
)

// RefHandle is a reference-counted handle to an external resource. The
// externally observable count proves how many live owners an operation
// produced: copies increment, teardown decrements, moves do neither.
type RefHandle struct {
	refs *atomix.Uint32
}

func newRefHandle() RefHandle {
	c := &atomix.Uint32{}
	c.Add(1)
	return RefHandle{refs: c}
}

// Owners returns the current owner count.
func (h RefHandle) Owners() uint32 {
	if h.refs == nil {
		return 0
	}
	return h.refs.Load()
}

// Copy implements the non-failing copy capability.
func (h RefHandle) Copy() RefHandle {
	if h.refs != nil {
		h.refs.Add(1)
	}
	return h
}

// Release implements the non-failing teardown capability.
// Nil-safe so destroying a default-constructed handle is harmless.
func (h RefHandle) Release() {
	if h.refs != nil {
		h.refs.Add(^uint32(0))
	}
}

// Tracked counts its teardowns through a shared counter.
type Tracked struct {
	torn *int
}

func (t Tracked) Release() {
	if t.torn != nil {
		*t.torn++
	}
}

var errDispose = errors.New("dispose failed")

// FlakyFile tears down with a configurable failure.
type FlakyFile struct {
	fail   bool
	closed bool
}

func (f *FlakyFile) Dispose() error {
	f.closed = true
	if f.fail {
		return errDispose
	}
	return nil
}

var errClone = errors.New("clone failed")

// Blob copies with a configurable failure.
type Blob struct {
	data      string
	failClone bool
}

func (b Blob) Clone() (Blob, error) {
	if b.failClone {
		return Blob{}, errClone
	}
	return b, nil
}

// Celsius is convertible from any numeric type; it stands in for an
// alternative with a converting constructor.
type Celsius float64
