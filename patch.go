// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import "io"

// ComputePatch finds the exact patchLen-byte sequence (patchLen ==
// e.Params().NumBytes()) that, spliced into src at targetPos, makes the
// whole resulting stream's digest equal targetChecksum. overwrite selects
// whether the splice replaces patchLen existing bytes or is inserted
// between them; targetSize is the length the patched stream will have.
//
// The solve works by meeting two independently-scanned register values at
// the splice point: a forward scan of the prefix [0,targetPos) gives the
// register just before the splice, and a reverse scan of the suffix (the
// bytes unaffected by the splice) gives the register the splice must land
// on. The reverse table then algebraically reconstructs the patch bytes
// that connect the two, using the same per-byte inversion the stream
// consumer relies on.
func ComputePatch(e *Engine, src ByteSource, targetChecksum uint64, targetPos int64, overwrite bool, chunkSize int64, obs Observer) (patch []byte, targetSize int64, err error) {
	origSize, err := src.Len()
	if err != nil {
		return nil, 0, err
	}
	if targetPos < 0 || targetPos > origSize {
		return nil, 0, ErrInvalidPosition
	}

	params := e.Params()
	patchLen := int64(params.NumBytes())

	targetSize = origSize
	if overwrite {
		if targetPos+patchLen > origSize {
			targetSize = targetPos + patchLen
		}
	} else {
		targetSize = origSize + patchLen
	}

	goal := (targetChecksum ^ params.FinalXOR) & params.mask()
	if params.UseFileSize {
		e.ResetTo(goal)
		e.UpdateReverse(minLEBytes(uint64(targetSize)))
		goal = e.Raw()
	}

	suffixStart := targetPos
	if overwrite {
		suffixStart += patchLen
		if suffixStart > origSize {
			suffixStart = origSize
		}
	}

	e.Reset()
	if err := Consume(e, src, nil, &targetPos, chunkSize, obs); err != nil {
		return nil, 0, err
	}
	checksumA := e.Raw()

	e.ResetTo(goal)
	if err := ConsumeReverse(e, src, &suffixStart, &origSize, chunkSize, obs); err != nil {
		return nil, 0, err
	}
	checksumB := e.Raw()

	if params.BigEndian {
		checksumA = swapEndian(checksumA, params.NumBits)
	}

	e.ResetTo(checksumB)
	e.UpdateReverse(leBytes(checksumA, int(patchLen)))
	patchVal := e.Raw()

	if params.BigEndian {
		patchVal = swapEndian(patchVal, params.NumBits)
	}
	return leBytes(patchVal, int(patchLen)), targetSize, nil
}

// ApplyPatch copies src to dst, splicing patch (as produced by
// ComputePatch, or any patchLen-byte sequence) at targetPos: overwriting
// patchLen existing bytes there, or inserting between them, mirroring the
// mode ComputePatch was called with.
func ApplyPatch(src ByteSource, dst io.Writer, patch []byte, targetPos int64, overwrite bool, chunkSize int64, obs Observer) error {
	endPos, err := src.Len()
	if err != nil {
		return err
	}
	if targetPos < 0 || targetPos > endPos {
		return ErrInvalidPosition
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}

	total := endPos
	buf := make([]byte, chunkSize)

	pos := int64(0)
	for pos < targetPos {
		n := chunkSize
		if n > targetPos-pos {
			n = targetPos - pos
		}
		chunk := buf[:n]
		if _, err := io.ReadFull(src, chunk); err != nil {
			return errShortRead(err)
		}
		if _, err := dst.Write(chunk); err != nil {
			return err
		}
		pos += n
		if obs != nil {
			obs.OnChunk(pos, total)
		}
	}

	if _, err := dst.Write(patch); err != nil {
		return err
	}
	if overwrite {
		pos += int64(len(patch))
		if _, err := src.Seek(pos, io.SeekStart); err != nil {
			return err
		}
	}

	for pos < endPos {
		n := chunkSize
		if n > endPos-pos {
			n = endPos - pos
		}
		chunk := buf[:n]
		if _, err := io.ReadFull(src, chunk); err != nil {
			return errShortRead(err)
		}
		if _, err := dst.Write(chunk); err != nil {
			return err
		}
		pos += n
		if obs != nil {
			obs.OnChunk(pos, total)
		}
	}
	return nil
}
