// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	crc "github.com/rr-/crcmanip-go"
)

// memSource is the in-memory crc.ByteSource test fixtures use in place of
// the real file-backed adapter cmd/crcmanip constructs against *os.File.
type memSource struct {
	*bytes.Reader
}

func newMemSource(data []byte) memSource {
	return memSource{bytes.NewReader(data)}
}

func (m memSource) Len() (int64, error) {
	return m.Size(), nil
}

type countingObserver struct {
	calls []int64
}

func (c *countingObserver) OnChunk(processed, total int64) {
	c.calls = append(c.calls, processed)
}

func TestConsumeMatchesWholeUpdate(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	whole := crc.MustNewEngine(crc.CRC32)
	whole.Update(data)

	src := newMemSource(data)
	chunked := crc.MustNewEngine(crc.CRC32)
	obs := &countingObserver{}
	require.NoError(t, crc.Consume(chunked, src, nil, nil, 7, obs))
	require.Equal(t, whole.Raw(), chunked.Raw())
	require.NotEmpty(t, obs.calls)
}

func TestConsumePartialWindow(t *testing.T) {
	data := []byte("0123456789")
	whole := crc.MustNewEngine(crc.CRC32)
	whole.Update(data[2:7])

	src := newMemSource(data)
	e := crc.MustNewEngine(crc.CRC32)
	start, end := int64(2), int64(7)
	require.NoError(t, crc.Consume(e, src, &start, &end, 2, nil))
	require.Equal(t, whole.Raw(), e.Raw())
}

func TestConsumeReverseUndoesConsume(t *testing.T) {
	data := []byte("abcdefghijklmnopqrstuvwxyz")
	src := newMemSource(data)

	e := crc.MustNewEngine(crc.CRC16XMODEM)
	seed := e.Raw()
	require.NoError(t, crc.Consume(e, src, nil, nil, 5, nil))

	back := crc.MustNewEngine(crc.CRC16XMODEM)
	back.ResetTo(e.Raw())
	require.NoError(t, crc.ConsumeReverse(back, src, nil, nil, 5, nil))
	require.Equal(t, seed, back.Raw())
}

func TestConsumeEmptyWindowIsNoop(t *testing.T) {
	src := newMemSource([]byte("anything"))
	e := crc.MustNewEngine(crc.CRC32)
	start := int64(3)
	require.NoError(t, crc.Consume(e, src, &start, &start, 16, nil))
	require.Equal(t, crc.CRC32.InitialXOR, e.Raw())
}
