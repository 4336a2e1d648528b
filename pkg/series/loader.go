package series

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Option configures Read and Load.
type Option func(*options)

type options struct {
	encoding Encoding
	source   string
}

// WithEncoding sets the text encoding of the input (default utf-16).
func WithEncoding(enc Encoding) Option {
	return func(o *options) {
		if enc != "" {
			o.encoding = enc
		}
	}
}

// WithSource names the input in errors. Load sets it to the file path.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

func newOptions(opts []Option) *options {
	o := &options{encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Read parses every line of r into a Sample, in order.
// An empty input yields an empty slice. The first malformed line aborts the read.
func Read(ctx context.Context, r io.Reader, opts ...Option) ([]Sample, error) {
	o := newOptions(opts)

	scanner, err := NewScanner(r, o.encoding, o.source)
	if err != nil {
		return nil, err
	}

	samples := []Sample{}
	for {
		parsed, err := scanner.Next(ctx)
		if errors.Is(err, io.EOF) {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
		samples = append(samples, parsed.Sample)
	}
}

// Load reads the series file at path. The file is closed before Load returns.
func Load(ctx context.Context, path string, opts ...Option) (*Series, error) {
	opts = append([]Option{WithSource(path)}, opts...)

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, &ReadError{Source: path, Err: err}
	}
	defer f.Close()

	samples, err := Read(ctx, f, opts...)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tag":     "SeriesLoader",
		"path":    path,
		"samples": len(samples),
	}).Debug("loaded series")

	return &Series{Source: path, Samples: samples}, nil
}

// Load reads the file described by the spec and attaches its display metadata.
func (s Spec) Load(ctx context.Context) (*Series, error) {
	loaded, err := Load(ctx, s.Path, WithEncoding(s.Encoding))
	if err != nil {
		return nil, err
	}
	loaded.Label = s.Label
	loaded.Color = s.Color
	return loaded, nil
}

// LoadAll loads every spec concurrently. The result has the same order as specs.
// The first failure cancels the remaining loads and is returned.
func LoadAll(ctx context.Context, specs []Spec) ([]*Series, error) {
	result := make([]*Series, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			loaded, err := spec.Load(ctx)
			if err != nil {
				return err
			}
			result[i] = loaded
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
