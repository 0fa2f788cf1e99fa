// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package main

import "os"

// fileSource adapts *os.File to crc.ByteSource.
type fileSource struct {
	*os.File
}

func (f fileSource) Len() (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
