package parsec

import (
	"errors"
	"io"
	"os"

	"github.com/arnodel/parsec/input"
	"github.com/arnodel/parsec/parser"
)

// An Option changes how the functions of this package run a parser.
type Option func(*settings) error

type settings struct {
	config input.Config
	tracer parser.Tracer
}

// WithConfig sets the configuration of the Stream used by ParseReader and
// ParseFile.
func WithConfig(cfg input.Config) Option {
	return func(s *settings) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.config = cfg
		return nil
	}
}

// WithConfigFile loads the Stream configuration from a TOML or YAML file
// (see input.LoadConfig).
func WithConfigFile(path string) Option {
	return func(s *settings) error {
		cfg, err := input.LoadConfig(path)
		if err != nil {
			return err
		}
		s.config = cfg
		return nil
	}
}

// WithTracer traces the parse with tr.
func WithTracer(tr parser.Tracer) Option {
	return func(s *settings) error {
		s.tracer = tr
		return nil
	}
}

func newSettings(opts []Option) (*settings, error) {
	s := &settings{config: input.DefaultConfig()}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ParseReader runs p on the bytes of r, buffered in a Stream.  r is not
// closed.
func ParseReader[E, R any](p parser.Parser[E, R], r io.Reader, opts ...Option) (parser.Result[E, R], error) {
	s, err := newSettings(opts)
	if err != nil {
		return parser.Result[E, R]{}, err
	}
	// Hide any Close method so that closing the stream leaves r open.
	return parseStream(s, p, struct{ io.Reader }{r})
}

// ParseFile runs p on the content of the file at path, which is read
// incrementally.
func ParseFile[E, R any](p parser.Parser[E, R], path string, opts ...Option) (parser.Result[E, R], error) {
	s, err := newSettings(opts)
	if err != nil {
		return parser.Result[E, R]{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return parser.Result[E, R]{}, err
	}
	return parseStream(s, p, f)
}

// ParseBytes runs p on b.  No windowing is involved, so configuration
// options have no effect.
func ParseBytes[E, R any](p parser.Parser[E, R], b []byte, opts ...Option) (parser.Result[E, R], error) {
	s, err := newSettings(opts)
	if err != nil {
		return parser.Result[E, R]{}, err
	}
	return p.Parse(input.NewArray(b), s.tracer)
}

// ParseString runs p on the bytes of str.
func ParseString[E, R any](p parser.Parser[E, R], str string, opts ...Option) (parser.Result[E, R], error) {
	return ParseBytes(p, []byte(str), opts...)
}

// parseStream runs p on a Stream over r and closes the stream, which closes
// r if it is an io.Closer.
func parseStream[E, R any](s *settings, p parser.Parser[E, R], r io.Reader) (res parser.Result[E, R], err error) {
	in, err := input.NewStreamWithConfig(r, s.config)
	if err != nil {
		if c, ok := r.(io.Closer); ok {
			err = errors.Join(err, c.Close())
		}
		return res, err
	}
	defer func() {
		err = errors.Join(err, in.Close())
	}()
	return p.Parse(in, s.tracer)
}
