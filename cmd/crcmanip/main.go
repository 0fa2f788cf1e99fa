// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

// Command crcmanip computes and patches CRC-style checksums of files:
// "calc" reports a file's digest under a named algorithm, "patch" finds
// and splices in the bytes that make a file's digest equal a chosen
// target value.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	crc "github.com/rr-/crcmanip-go"
	"github.com/rr-/crcmanip-go/internal/progressobs"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	app := &cli.App{
		Name:  "crcmanip",
		Usage: "compute and patch CRC-family checksums",
		Commands: []*cli.Command{
			calcCommand(sugar),
			patchCommand(sugar),
		},
	}
	if err := app.Run(os.Args); err != nil {
		sugar.Fatalw("crcmanip failed", "error", err)
	}
}

func algorithmFlag() *cli.StringFlag {
	names := make([]string, 0, len(crc.Presets))
	for name := range crc.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Value:   "crc32",
		Usage:   fmt.Sprintf("algorithm preset (%s)", strings.Join(names, ", ")),
	}
}

func resolveAlgorithm(name string) (*crc.Params, error) {
	params, ok := crc.Presets[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown algorithm %q", name)
	}
	return params, nil
}

func openSource(path string) (fileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return fileSource{}, errors.Wrapf(err, "opening %s", path)
	}
	return fileSource{f}, nil
}

func observerFor(quiet bool, label string) crc.Observer {
	if quiet {
		return progressobs.Disabled()
	}
	return progressobs.New(os.Stderr, label)
}

// resolvePos implements the original tool's negative-offset wraparound:
// a negative --pos counts back from the end of the file. This is a
// CLI-only convenience; crc.ComputePatch/ApplyPatch still reject any
// position outside [0, size].
func resolvePos(pos, size int64) int64 {
	for pos < 0 {
		pos += size
	}
	return pos
}

func parseChecksum(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing checksum %q", s)
	}
	return v, nil
}
