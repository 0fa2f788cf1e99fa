// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

// Package progressobs adapts schollz/progressbar into a crc.Observer, the
// Go-side counterpart of the original tool's tqdm-based track_progress
// helper: a labeled, byte-unit bar that advances once per chunk.
package progressobs

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	crc "github.com/rr-/crcmanip-go"
)

// bar adapts a *progressbar.ProgressBar to crc.Observer. It tracks the last
// processed count it saw so it can report the delta progressbar's Add64
// expects, since the stream/patch code reports cumulative totals.
type bar struct {
	pb   *progressbar.ProgressBar
	seen int64
}

// New returns a crc.Observer that renders a byte-unit progress bar labeled
// label to w. Pass io.Discard for w (or use Disabled) to silence it, the
// Go equivalent of the original CLI's --quiet flag disabling tqdm.
func New(w io.Writer, label string) crc.Observer {
	pb := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(25),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	return &bar{pb: pb}
}

// Disabled returns a crc.Observer that discards all progress notifications.
func Disabled() crc.Observer { return discard{} }

func (b *bar) OnChunk(processed, total int64) {
	if b.pb.GetMax64() != total {
		b.pb.ChangeMax64(total)
	}
	if delta := processed - b.seen; delta > 0 {
		_ = b.pb.Add64(delta)
	}
	b.seen = processed
	if processed >= total {
		_ = b.pb.Finish()
	}
}

type discard struct{}

func (discard) OnChunk(processed, total int64) {}
