package notation

import (
	"context"
	"fmt"
	"log/slog"
)

// Converter runs the tokenize, validate, build, emit pipeline.
type Converter struct {
	// DetectForeign reports a WrongFormatError when the expression is
	// malformed in the declared format but valid in another one.
	DetectForeign bool

	// Logger receives Debug records for each stage. Nil disables logging.
	Logger *slog.Logger
}

var (
	StrictConverter  = Converter{DetectForeign: true}
	LenientConverter = Converter{DetectForeign: false}
)

// Conversion is the outcome of a successful Convert.
type Conversion struct {
	From   Format
	To     Format
	Output string

	// AlreadyInTargetForm is set when From == To; Output is then the input
	// expression unchanged.
	AlreadyInTargetForm bool

	// Tree is nil when AlreadyInTargetForm is set.
	Tree *Node
}

// Convert rewrites expr from one notation to another using StrictConverter.
func Convert(expr string, from, to Format) (string, error) {
	c, err := StrictConverter.Convert(expr, from, to)
	if err != nil {
		return "", err
	}
	return c.Output, nil
}

// WithLogger returns a copy of c that logs to l.
func (c Converter) WithLogger(l *slog.Logger) Converter {
	c.Logger = l
	return c
}

// Convert validates expr in from, builds its tree and emits it in to.
// When from == to nothing is built and expr is returned as is.
func (c Converter) Convert(expr string, from, to Format) (conv *Conversion, err error) {
	if !from.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, from)
	}
	if !to.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, to)
	}

	tokens := Tokenize(expr)
	c.debug("tokens", slog.String("from", from.String()), slog.Int("count", len(tokens)))

	if from == to {
		if err = c.validate(tokens, from, false); err != nil {
			return nil, err
		}
		return &Conversion{From: from, To: to, Output: expr, AlreadyInTargetForm: true}, nil
	}

	root, err := c.parse(tokens, from)
	if err != nil {
		return nil, err
	}

	out := Emit(root, to)
	c.debug("emitted", slog.String("to", to.String()), slog.String("output", out))

	return &Conversion{From: from, To: to, Output: out, Tree: root}, nil
}

// Parse validates expr in format f and builds its tree.
func (c Converter) Parse(expr string, f Format) (*Node, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return c.parse(Tokenize(expr), f)
}

func (c Converter) parse(tokens []Token, f Format) (*Node, error) {
	if err := c.validate(tokens, f, c.DetectForeign); err != nil {
		return nil, err
	}

	root, err := Build(tokens, f)
	if err != nil {
		return nil, err
	}
	c.debug("built", slog.Int("nodes", root.Size()), slog.Int("depth", root.Depth()))
	return root, nil
}

// validate returns nil when tokens are valid in f, or the error describing
// the fault. With detect set, a fault in f that disappears in another
// format is reported as a WrongFormatError instead.
func (c Converter) validate(tokens []Token, f Format, detect bool) (err error) {
	defer func() {
		if err != nil {
			c.debug("rejected", slog.String("format", f.String()), slog.Any("err", err))
		} else {
			c.debug("validated", slog.String("format", f.String()))
		}
	}()

	res := Validate(tokens, f)
	if res == Valid {
		return nil
	}

	// detection runs only after f fails, so a lone operand, valid in every
	// notation, is never reported as foreign
	if detect {
		if actual, ok := Detect(tokens, f); ok {
			return &WrongFormatError{Declared: f, Actual: actual}
		}
	}

	if res == InvalidCharacter {
		if t, ok := firstInvalid(tokens); ok {
			return &InvalidCharError{Char: t.Char, Offset: t.Offset}
		}
	}
	return res.Err()
}

func (c Converter) debug(msg string, attrs ...slog.Attr) {
	if c.Logger == nil {
		return
	}
	c.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
