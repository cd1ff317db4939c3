// Command linfit fits a straight line to measurements read from a CSV file or
// a dataset frame and prints the result.
//
// Usage:
//
//	linfit -in run42.csv
//	linfit -in run42.csv -encode run42.lfd -compression zstd
//	linfit -in run42.lfd -digits 2 -no-residuals
//	linfit -in run42.csv -tolerance 1e-9
//	cat run42.csv | linfit -in -
package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/linfit/dataset"
	"github.com/arloliu/linfit/fit"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/report"
)

const (
	formatAuto    = "auto"
	formatCSV     = "csv"
	formatDataset = "dataset"
)

type config struct {
	in          string
	format      string
	encode      string
	compression string
	digits      int
	tolerance   float64
	noResiduals bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("linfit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "-", "input file (CSV or dataset), - for stdin")
	fs.StringVar(&cfg.format, "format", formatAuto, "input format: auto, csv or dataset")
	fs.StringVar(&cfg.encode, "encode", "", "write the samples as a dataset frame to this path")
	fs.StringVar(&cfg.compression, "compression", "zstd", "dataset compression: none, zstd, s2 or lz4")
	fs.IntVar(&cfg.digits, "digits", 0, "round uncertainties to this many significant digits (0 prints raw values)")
	fs.Float64Var(&cfg.tolerance, "tolerance", fit.DefaultDegeneracyTolerance, "relative determinant threshold below which the fit is degenerate")
	fs.BoolVar(&cfg.noResiduals, "no-residuals", false, "omit the residual list")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.format {
	case formatAuto, formatCSV, formatDataset:
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}

	return cfg, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logrus.Errorf("linfit err:%v", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logrus.SetOutput(stderr)
	if cfg.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	data, err := readInput(cfg.in, stdin)
	if err != nil {
		logrus.Errorf("readInput err:%v", err)
		return err
	}

	samples, err := loadSamples(cfg.format, data)
	if err != nil {
		logrus.Errorf("loadSamples err:%v", err)
		return err
	}
	logrus.Debugf("loaded %d samples, dx:%v", samples.Len(), samples.HasDX())

	if cfg.encode != "" {
		if err := writeDataset(cfg, samples); err != nil {
			logrus.Errorf("writeDataset err:%v", err)
			return err
		}
	}

	res, err := fit.FitSamples(samples, fit.WithDegeneracyTolerance(cfg.tolerance))
	if err != nil {
		logrus.Errorf("fit.FitSamples err:%v", err)
		return err
	}
	logrus.Debugf("fit result:%s", res)

	var opts []report.Option
	if cfg.digits > 0 {
		opts = append(opts, report.WithSignificantDigits(cfg.digits))
	}
	if cfg.noResiduals {
		opts = append(opts, report.WithoutResiduals())
	}

	return report.Text(stdout, res, opts...)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

func loadSamples(inputFormat string, data []byte) (fit.Samples, error) {
	if inputFormat == formatAuto {
		inputFormat = detectFormat(data)
		logrus.Debugf("detected input format:%s", inputFormat)
	}

	if inputFormat == formatCSV {
		return dataset.ReadCSV(bytes.NewReader(data))
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		if header, err := dataset.ParseHeader(data); err == nil {
			logrus.Debugf("dataset header:\n%s", spew.Sdump(header))
			stats := header.Stats()
			logrus.Debugf("payload %s: %d -> %d bytes (%.1f%% saved)",
				stats.Algorithm, stats.RawSize, stats.CompressedSize, stats.SpaceSavings())
		}
	}

	ds, err := dataset.Decode(data)
	if err != nil {
		return fit.Samples{}, err
	}
	logrus.Debugf("dataset id:%s created:%s", ds.ID, ds.CreatedAt)

	return ds.Samples, nil
}

// detectFormat recognises dataset frames by the magic number in their first word.
func detectFormat(data []byte) string {
	if len(data) >= dataset.HeaderSize &&
		binary.LittleEndian.Uint16(data[0:2])&dataset.MagicNumberMask == dataset.MagicDatasetV1 {
		return formatDataset
	}

	return formatCSV
}

func writeDataset(cfg *config, samples fit.Samples) error {
	compression, err := format.ParseCompression(cfg.compression)
	if err != nil {
		return err
	}

	ds := dataset.New(samples)
	data, err := dataset.Encode(ds, dataset.WithCompression(compression))
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.encode, data, 0o644); err != nil { //nolint: gosec
		return err
	}
	logrus.Infof("wrote dataset %s (%d bytes, %s) to %s", ds.ID, len(data), compression, cfg.encode)

	return nil
}
