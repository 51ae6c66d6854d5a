// SPDX-License-Identifier: GPL-2.0-only

// Command lz8sdec decompresses a byte stream produced by lz8senc.
package main

import (
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
	fs := pflag.NewFlagSet("lz8sdec", pflag.ContinueOnError)
	bitsMOff := fs.IntP("offset-bits", "o", 8, "bits used for the match offset, 0-16")
	maxLLen := fs.IntP("max-literal", "l", 255, "maximum literal-run length")
	maxMLen := fs.IntP("max-match", "m", 255, "maximum match length")
	addrRel := fs.IntP("addr-rel", "A", -1, "address-relative window base (negative: disabled)")
	zeroOffset := fs.BoolP("zero-offset", "n", false, "the offset field is always present, even for length-0 matches")
	exorOffset := fs.BoolP("exor-offset", "x", false, "complement offset bytes under the offset mask before use")
	quiet := fs.BoolP("quiet", "q", false, "log errors only")
	verbose := fs.BoolP("verbose", "v", false, "log a summary on success")
	debug := fs.BoolP("debug", "d", false, "log configuration detail")

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
	log.Debugf("cfg: %+v", cfg)

	in, out, closer, err := openStreams(fs.Args())
	if err != nil {
		log.Error(err)
		return 1
	}
	defer closer()

	stream, err := io.ReadAll(in)
	if err != nil {
		log.Errorf("reading input: %v", err)
		return 1
	}

	data, n, err := lz8s.Decode(cfg, stream)
	if err != nil {
		log.Errorf("decoding failed at byte %d: %v", n, err)
		return 1
	}

	if _, err := out.Write(data); err != nil {
		log.Errorf("writing output: %v", err)
		return 1
	}
	log.Infof("wrote %d bytes from %d stream bytes", len(data), n)
	return 0
}

// openStreams resolves the positional [input [output]] arguments to
// readable/writable streams, defaulting to stdin/stdout.
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
