// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import "io"

// DefaultChunkSize is the window consume/patch operations read at a time
// when the caller doesn't override it.
const DefaultChunkSize = 1 << 20 // 1 MiB

// ByteSource is a seekable, length-known byte source. *os.File satisfies it
// once wrapped with a Len accessor; cmd/crcmanip supplies the concrete
// file-backed adapter.
type ByteSource interface {
	io.ReadSeeker
	// Len returns the total number of bytes available from the source.
	Len() (int64, error)
}

// Observer is notified once per chunk as a stream or patch operation makes
// progress. processed is the cumulative byte count handled so far; total is
// the size of the whole window being walked. Implementations must return
// quickly; a progress bar or log line, not heavier work.
type Observer interface {
	OnChunk(processed, total int64)
}

// fixWindow normalizes a possibly-open-ended, possibly-reversed [start,end)
// window against the source's length, the way the original tool's
// fix_start_end_pos helper does: nil bounds default to the whole source, and
// a start past end is swapped rather than rejected.
func fixWindow(src ByteSource, start, end *int64) (int64, int64, error) {
	size, err := src.Len()
	if err != nil {
		return 0, 0, err
	}
	s, e := int64(0), size
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	if s > e {
		s, e = e, s
	}
	return s, e, nil
}

// Consume feeds the window [start,end) of src into e in forward byte order,
// in chunks of at most chunkSize, seeking once up front. A nil start or end
// defaults to the beginning or the end of src respectively. obs, if
// non-nil, is invoked after every chunk.
func Consume(e *Engine, src ByteSource, start, end *int64, chunkSize int64, obs Observer) error {
	s, en, err := fixWindow(src, start, end)
	if err != nil {
		return err
	}
	if s == en {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	if _, err := src.Seek(s, io.SeekStart); err != nil {
		return err
	}
	total := en - s
	remaining := total
	buf := make([]byte, chunkSize)
	for remaining > 0 {
		n := chunkSize
		if n > remaining {
			n = remaining
		}
		chunk := buf[:n]
		if _, err := io.ReadFull(src, chunk); err != nil {
			return errShortRead(err)
		}
		e.Update(chunk)
		remaining -= n
		if obs != nil {
			obs.OnChunk(total-remaining, total)
		}
	}
	return nil
}

// ConsumeReverse feeds the window [start,end) of src into e in reverse, the
// way the patch solver rolls the register back from a known suffix
// checksum toward the splice point: chunks are visited from the tail of
// the window toward its head, seeking before each read, so the last bytes
// of the window are reverse-updated first.
func ConsumeReverse(e *Engine, src ByteSource, start, end *int64, chunkSize int64, obs Observer) error {
	s, en, err := fixWindow(src, start, end)
	if err != nil {
		return err
	}
	if s == en {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	total := en - s
	remaining := total
	buf := make([]byte, chunkSize)
	for remaining > 0 {
		n := chunkSize
		if n > remaining {
			n = remaining
		}
		if _, err := src.Seek(s+remaining-n, io.SeekStart); err != nil {
			return err
		}
		chunk := buf[:n]
		if _, err := io.ReadFull(src, chunk); err != nil {
			return errShortRead(err)
		}
		e.UpdateReverse(chunk)
		remaining -= n
		if obs != nil {
			obs.OnChunk(total-remaining, total)
		}
	}
	return nil
}

func errShortRead(cause error) error {
	if cause == io.ErrUnexpectedEOF || cause == io.EOF {
		return ErrShortRead
	}
	return cause
}
