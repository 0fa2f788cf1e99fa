// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

// Named presets. Each is a ready-to-use *Params value; construct an Engine
// from one with NewEngine or MustNewEngine. Hosts that need an algorithm
// outside this table build their own Params value directly — Params stays a
// plain, exported struct precisely so presets aren't the only entry point.
var (
	// CRC32 is the common "CRC-32" (zip/ethernet/PNG) algorithm: reflected,
	// init and final XOR both all-ones.
	CRC32 = &Params{
		NumBits:    32,
		Polynomial: 0x04C11DB7,
		InitialXOR: 0xFFFFFFFF,
		FinalXOR:   0xFFFFFFFF,
	}

	// CRC32POSIX is the POSIX cksum(1) variant: big-endian, no initial XOR,
	// final XOR all-ones, and the total byte count folded in before the
	// final XOR.
	CRC32POSIX = &Params{
		NumBits:     32,
		Polynomial:  0x04C11DB7,
		FinalXOR:    0xFFFFFFFF,
		BigEndian:   true,
		UseFileSize: true,
	}

	// CRC16CCITT is the reflected CRC-16/KERMIT variant, no init or final
	// XOR.
	CRC16CCITT = &Params{
		NumBits:    16,
		Polynomial: 0x1021,
	}

	// CRC16XMODEM is the big-endian CRC-16/XMODEM variant, no init or final
	// XOR.
	CRC16XMODEM = &Params{
		NumBits:    16,
		Polynomial: 0x1021,
		BigEndian:  true,
	}

	// CRC16IBM is the reflected CRC-16/ARC ("IBM") variant, no init or
	// final XOR.
	CRC16IBM = &Params{
		NumBits:    16,
		Polynomial: 0x8005,
	}
)

// Presets maps the identifier a CLI or config file would use to select an
// algorithm onto its Params value.
var Presets = map[string]*Params{
	"crc32":       CRC32,
	"crc32posix":  CRC32POSIX,
	"crc16ccitt":  CRC16CCITT,
	"crc16xmodem": CRC16XMODEM,
	"crc16ibm":    CRC16IBM,
}
