// Copyright (c) 2024 The btcsharp developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package logbridge implements a fire-and-forget diagnostic channel.
// Producers hand over raw UTF-8 messages that may live in buffers they reuse
// as soon as the call returns, and a single consumer goroutine forwards the
// detached records to a btclog.Logger in the order they were accepted.
//
// Logging never blocks the producer.  Records that arrive while the queue is
// full or after Shutdown are dropped and counted.
package logbridge

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/btcsuite/btclog"
)

const (
	// DefaultQueueDepth is the number of records buffered between producers
	// and the consumer when New is given a non-positive depth.
	DefaultQueueDepth = 4096

	// stackThreshold is the largest message sanitized in a fixed size local
	// buffer.  Larger messages use a pooled buffer.
	stackThreshold = 1024

	// maxPooledSize is the largest buffer returned to the pool.
	maxPooledSize = 64 * 1024
)

// Level is the severity of a bridged record.  The numeric values are part of
// the producer facing contract and must not change.
type Level int32

// Level constants.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// levelStrs defines the human-readable names for each level.
var levelStrs = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// String returns the name of the level.
func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return fmt.Sprintf("Unknown Level (%d)", int32(l))
	}
	return levelStrs[l]
}

// record is a detached message waiting for the consumer.
type record struct {
	level Level
	msg   string
}

// Bridge queues records from any number of producers and writes them to a
// logger from a single goroutine.
type Bridge struct {
	logger  btclog.Logger
	records chan record
	dropped atomic.Uint64
	wg      sync.WaitGroup

	// mtx guards closed so no producer sends on records after it is
	// closed.
	mtx      sync.RWMutex
	closed   bool
	shutdown sync.Once
}

// New returns a bridge writing to logger and starts its consumer.  A
// non-positive depth selects DefaultQueueDepth.
func New(logger btclog.Logger, depth int) *Bridge {
	if depth <= 0 {
		depth = DefaultQueueDepth
	}
	b := &Bridge{
		logger:  logger,
		records: make(chan record, depth),
	}
	b.wg.Add(1)
	go b.consumer()
	return b
}

// consumer forwards records until the queue is closed and drained.
//
// This must be run as a goroutine.
func (b *Bridge) consumer() {
	defer b.wg.Done()
	for r := range b.records {
		b.emit(r)
	}
}

// emit writes a single record at the logger level matching its level.
// Unknown levels are written at info.
func (b *Bridge) emit(r record) {
	switch r.level {
	case LevelTrace:
		b.logger.Trace(r.msg)
	case LevelDebug:
		b.logger.Debug(r.msg)
	case LevelWarn:
		b.logger.Warn(r.msg)
	case LevelError:
		b.logger.Error(r.msg)
	case LevelFatal:
		b.logger.Critical(r.msg)
	default:
		b.logger.Info(r.msg)
	}
}

// Log queues msg at the given level.  The message is copied before Log
// returns, so the caller may reuse its buffer immediately.  Empty messages
// are ignored.
func (b *Bridge) Log(level Level, msg []byte) {
	if len(msg) == 0 {
		return
	}
	b.enqueue(record{level: level, msg: detach(msg)})
}

// Logf formats and queues a message at the given level.
func (b *Bridge) Logf(level Level, format string, args ...interface{}) {
	b.Log(level, []byte(fmt.Sprintf(format, args...)))
}

// enqueue hands r to the consumer without blocking.
func (b *Bridge) enqueue(r record) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	if b.closed {
		b.dropped.Add(1)
		return
	}
	select {
	case b.records <- r:
	default:
		b.dropped.Add(1)
	}
}

// Dropped returns the number of records dropped so far.
func (b *Bridge) Dropped() uint64 {
	return b.dropped.Load()
}

// Shutdown stops accepting records, waits for the consumer to write every
// record already queued and returns.  It is safe to call more than once.
func (b *Bridge) Shutdown() {
	b.shutdown.Do(func() {
		b.mtx.Lock()
		b.closed = true
		close(b.records)
		b.mtx.Unlock()
	})
	b.wg.Wait()
}

// bufferPool holds scratch buffers for messages above stackThreshold.
var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, 4*stackThreshold)
		return &buf
	},
}

// acquireBuffer returns an empty pooled buffer with room for at least n
// bytes.  It must be released with releaseBuffer.
func acquireBuffer(n int) *[]byte {
	buf := bufferPool.Get().(*[]byte)
	if cap(*buf) < n {
		*buf = make([]byte, 0, n)
	}
	*buf = (*buf)[:0]
	return buf
}

// releaseBuffer returns buf to the pool unless it grew too large to keep.
func releaseBuffer(buf *[]byte) {
	if cap(*buf) > maxPooledSize {
		return
	}
	bufferPool.Put(buf)
}

// detach returns a sanitized string copy of msg.  Small messages are
// sanitized in a local array and larger ones in a pooled buffer, and neither
// outlives the call.
func detach(msg []byte) string {
	if len(msg) <= stackThreshold {
		var local [stackThreshold]byte
		return string(sanitize(local[:0], msg))
	}

	buf := acquireBuffer(len(msg))
	defer releaseBuffer(buf)
	*buf = sanitize(*buf, msg)
	return string(*buf)
}

// sanitize appends msg to dst with trailing line terminators and NUL bytes
// removed and every invalid UTF-8 byte replaced by utf8.RuneError.
func sanitize(dst, msg []byte) []byte {
	for len(msg) > 0 {
		last := msg[len(msg)-1]
		if last != '\n' && last != '\r' && last != 0 {
			break
		}
		msg = msg[:len(msg)-1]
	}

	for len(msg) > 0 {
		r, size := utf8.DecodeRune(msg)
		if r == utf8.RuneError && size == 1 {
			dst = utf8.AppendRune(dst, utf8.RuneError)
		} else {
			dst = append(dst, msg[:size]...)
		}
		msg = msg[size:]
	}
	return dst
}
