// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import "github.com/pkg/errors"

// ErrInvalidPosition is returned when a target position for a patch
// computation or apply falls outside the valid [0, size] range for the
// operation's mode.
var ErrInvalidPosition = errors.New("crc: invalid position")

// ErrShortRead is returned by the stream consumer and the patch applier when
// a ByteSource yields fewer bytes than a requested window demands.
var ErrShortRead = errors.New("crc: short read")

// ErrBadParams is returned by NewEngine when a Params descriptor is
// malformed (NumBits not a multiple of 8, or outside [8,64]).
var ErrBadParams = errors.New("crc: bad params")
