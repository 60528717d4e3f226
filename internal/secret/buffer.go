// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secret holds key material and other sensitive bytes.
//
// Buffer keeps its contents outside the Go heap where the platform allows it
// (anonymous mmap, mlock, MADV_DONTDUMP on Linux) and zeroes them on Close.
// Secret is a redacting byte slice for values that must travel through
// configuration, logs or JSON without being printed.
package secret

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBufferClosed is returned by Use after Close.
var ErrBufferClosed = errors.New("secret: buffer is closed")

// Buffer holds sensitive data and zeroes it on Close. A Buffer must not be
// copied after creation.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	length int
	locked bool
	closed bool
}

// New allocates a zeroed buffer of size bytes.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: buffer size must be positive, got %d", size)
	}

	data, locked, err := allocate(size)
	if err != nil {
		return nil, err
	}

	return &Buffer{data: data, length: size, locked: locked}, nil
}

// NewFromBytes copies source into a new buffer and zeroes source in place.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, errors.New("secret: cannot create buffer from empty source")
	}

	b, err := New(len(source))
	if err != nil {
		return nil, err
	}

	copy(b.data, source)
	Wipe(source)

	return b, nil
}

// Use calls fn with the buffer contents while holding the buffer lock. The
// slice must not be retained after fn returns.
func (b *Buffer) Use(fn func([]byte) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBufferClosed
	}

	return fn(b.data[:b.length])
}

// Len returns the size of the secret data.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.length
}

// Locked reports whether the memory is pinned against swapping.
func (b *Buffer) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.locked
}

// String never reveals the contents.
func (b *Buffer) String() string {
	return redacted
}

// Close zeroes the contents and releases the memory. Close is idempotent.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	Wipe(b.data)
	err := release(b.data, b.locked)
	b.data = nil

	return err
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
