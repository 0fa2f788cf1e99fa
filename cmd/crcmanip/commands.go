// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	crc "github.com/rr-/crcmanip-go"
)

func calcCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:      "calc",
		Usage:     "print a file's checksum",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			algorithmFlag(),
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "suppress the progress bar"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return errors.New("missing <path>")
			}
			params, err := resolveAlgorithm(c.String("algorithm"))
			if err != nil {
				return err
			}
			src, err := openSource(path)
			if err != nil {
				return err
			}
			defer src.Close()

			e, err := crc.NewEngine(params)
			if err != nil {
				return errors.Wrap(err, "building engine")
			}
			obs := observerFor(c.Bool("quiet"), filepath.Base(path))
			if err := crc.Consume(e, src, nil, nil, crc.DefaultChunkSize, obs); err != nil {
				return errors.Wrap(err, "reading file")
			}
			log.Infow("computed checksum", "path", path, "algorithm", c.String("algorithm"), "checksum", e.HexDigest())
			fmt.Println(e.HexDigest())
			return nil
		},
	}
}

func patchCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:      "patch",
		Usage:     "splice bytes into a file to force a target checksum",
		ArgsUsage: "<path> <checksum>",
		Flags: []cli.Flag{
			algorithmFlag(),
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "suppress the progress bar"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output path (default: patch in place)"},
			&cli.BoolFlag{Name: "backup", Aliases: []string{"b"}, Usage: "keep a .bak copy when patching in place"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"O"}, Usage: "overwrite bytes at the target position instead of inserting"},
			&cli.Int64Flag{Name: "pos", Aliases: []string{"P"}, Value: -1, Usage: "splice position; negative counts back from the end of the file"},
		},
		Action: func(c *cli.Context) error {
			args := c.Args()
			if args.Len() < 2 {
				return errors.New("expected <path> <checksum>")
			}
			path := args.Get(0)
			checksum, err := parseChecksum(args.Get(1))
			if err != nil {
				return err
			}
			params, err := resolveAlgorithm(c.String("algorithm"))
			if err != nil {
				return err
			}

			src, err := openSource(path)
			if err != nil {
				return err
			}

			size, err := src.Len()
			if err != nil {
				return errors.Wrap(err, "stat")
			}
			pos := resolvePos(c.Int64("pos"), size)

			e, err := crc.NewEngine(params)
			if err != nil {
				return errors.Wrap(err, "building engine")
			}
			obs := observerFor(c.Bool("quiet"), filepath.Base(path))
			overwrite := c.Bool("overwrite")

			patch, _, err := crc.ComputePatch(e, src, checksum, pos, overwrite, crc.DefaultChunkSize, obs)
			if err != nil {
				src.Close()
				return errors.Wrap(err, "computing patch")
			}

			outPath := c.String("output")
			inPlace := outPath == ""
			if inPlace {
				outPath = path + ".tmp"
			}
			out, err := os.Create(outPath)
			if err != nil {
				src.Close()
				return errors.Wrapf(err, "creating %s", outPath)
			}

			applyErr := crc.ApplyPatch(src, out, patch, pos, overwrite, crc.DefaultChunkSize, obs)
			src.Close()
			closeErr := out.Close()
			if applyErr != nil {
				os.Remove(outPath)
				return errors.Wrap(applyErr, "applying patch")
			}
			if closeErr != nil {
				return errors.Wrap(closeErr, "closing output")
			}

			if inPlace {
				if c.Bool("backup") {
					if err := os.Rename(path, path+".bak"); err != nil {
						return errors.Wrap(err, "writing backup")
					}
				} else if err := os.Remove(path); err != nil {
					return errors.Wrap(err, "removing original file")
				}
				if err := os.Rename(outPath, path); err != nil {
					return errors.Wrap(err, "renaming patched file into place")
				}
			}

			log.Infow("patched file", "path", path, "output", firstNonEmpty(c.String("output"), path), "pos", pos, "overwrite", overwrite)
			return nil
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
