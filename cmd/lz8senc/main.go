// SPDX-License-Identifier: GPL-2.0-only

// Command lz8senc compresses a byte stream with the lz8s codec.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/dmsc/lz8s"
)

var log = logrus.New()

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("lz8senc", pflag.ContinueOnError)
	bitsMOff := fs.IntP("offset-bits", "o", 8, "bits used for the match offset, 0-16")
	maxLLen := fs.IntP("max-literal", "l", 255, "maximum literal-run length")
	maxMLen := fs.IntP("max-match", "m", 255, "maximum match length")
	addrRel := fs.IntP("addr-rel", "A", -1, "address-relative window base (negative: disabled)")
	zeroOffset := fs.BoolP("zero-offset", "n", false, "always emit the offset field, even for length-0 matches")
	exorOffset := fs.BoolP("exor-offset", "x", false, "complement offset bytes under the offset mask")
	quiet := fs.BoolP("quiet", "q", false, "log errors only")
	verbose := fs.BoolP("verbose", "v", false, "log a summary on success")
	debug := fs.BoolP("debug", "d", false, "log a per-block decision trace")

	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	switch {
	case *quiet:
		log.SetLevel(logrus.ErrorLevel)
	case *debug:
		log.SetLevel(logrus.DebugLevel)
	case *verbose:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}

	cfg := &lz8s.Cfg{
		BitsMOff:   *bitsMOff,
		MaxMLen:    *maxMLen,
		MaxLLen:    *maxLLen,
		ZeroOffset: *zeroOffset,
		ExorOffset: *exorOffset,
	}
	if *addrRel >= 0 {
		cfg.OffsetRel = addrRel
	}

	in, out, closer, err := openStreams(fs.Args())
	if err != nil {
		log.Error(err)
		return 1
	}
	defer closer()

	data, err := io.ReadAll(in)
	if err != nil {
		log.Errorf("reading input: %v", err)
		return 1
	}

	rep := &traceReporter{log: log}
	packed, err := lz8s.EncodeWithReporter(cfg, data, rep)
	if err != nil {
		if errors.Is(err, lz8s.ErrInfeasibleCost) {
			log.Errorf("internal encoder error: %v", err)
			return 2
		}
		log.Errorf("encoding failed: %v", err)
		return 1
	}

	if _, err := out.Write(packed); err != nil {
		log.Errorf("writing output: %v", err)
		return 1
	}
	log.Infof("wrote %d bytes from %d input bytes", len(packed), len(data))
	return 0
}

// openStreams resolves the positional [input [output]] arguments to
// readable/writable streams, defaulting to stdin/stdout, and returns a
// closer that releases whichever of them were opened as real files.
func openStreams(positional []string) (io.Reader, io.Writer, func(), error) {
	in := io.Reader(os.Stdin)
	out := io.Writer(os.Stdout)
	var closers []io.Closer

	if len(positional) >= 1 && positional[0] != "-" {
		f, err := os.Open(positional[0])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening input: %w", err)
		}
		in = f
		closers = append(closers, f)
	}
	if len(positional) >= 2 && positional[1] != "-" {
		f, err := os.Create(positional[1])
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, nil, nil, fmt.Errorf("opening output: %w", err)
		}
		out = f
		closers = append(closers, f)
	}

	return in, out, func() {
		for _, c := range closers {
			c.Close()
		}
	}, nil
}

// traceReporter drives logrus with a per-block account of what Encode
// wrote. Block-level detail only appears at debug level; verbose mode
// gets just the final summary.
type traceReporter struct {
	log *logrus.Logger
}

func (r *traceReporter) LiteralBlock(length int) {
	r.log.Debugf("literal block: %d bytes", length)
}

func (r *traceReporter) MatchBlock(length, offset int) {
	r.log.Debugf("match block: %d bytes at offset %d", length, offset)
}

func (r *traceReporter) Summary(literalBytes, matchBytes, blocks int) {
	r.log.Infof("summary: %d blocks, %d literal bytes, %d match bytes", blocks, literalBytes, matchBytes)
}
