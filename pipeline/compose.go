// Package pipeline resolves the raw fragments of a lot page into record
// values. A Composer runs one field's stage chain; an Assembler runs every
// field of a schema and collects the results into a record.
//
// Nothing in this package fails: a stage that misses or panics contributes
// its fallback value and the field is reported as unmatched.
package pipeline

import (
	"io"
	"log/slog"

	"github.com/fwojciec/artlot"
	"github.com/fwojciec/artlot/normalize"
)

// Composer runs field pipelines.
type Composer struct {
	logger *slog.Logger
}

// NewComposer creates a Composer that reports stage misses and recovered
// panics to logger. A nil logger discards them.
func NewComposer(logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Composer{logger: logger}
}

// Compose resolves fragments with a pipeline using a composer that does not
// log.
func Compose(p *artlot.Pipeline, fragments []string) (any, bool) {
	return discard.Compose("", p, fragments)
}

var discard = NewComposer(nil)

// Compose resolves the fragments of field into a single value. The result is
// matched only when every stage of the chain matched.
//
// A nil pipeline, or one without stages, yields the joined normalized text of
// the fragments.
func (c *Composer) Compose(field artlot.Field, p *artlot.Pipeline, fragments []string) (any, bool) {
	if p == nil || len(p.Stages) == 0 {
		s := normalize.Join(fragments)
		return s, s != ""
	}

	if p.Policy == artlot.JoinFirst {
		return c.run(field, p.Stages, normalize.Join(fragments))
	}

	for _, fragment := range fragments {
		if v, ok := c.run(field, p.Stages, normalize.Text(fragment)); ok {
			return v, true
		}
	}
	return p.Fallback(), false
}

// run feeds in through the stages in order. A missed stage passes its
// fallback on to the next one.
func (c *Composer) run(field artlot.Field, stages []artlot.Stage, in string) (any, bool) {
	var v any = in
	matched := true
	for _, stage := range stages {
		out, ok := c.apply(field, stage, v)
		if !ok {
			matched = false
			if stage.Warn && !isEmpty(v) {
				c.logger.Warn("field not parsed",
					"field", field,
					"stage", stage.Name,
					"input", v,
				)
			}
		}
		v = out
	}
	return v, matched
}

// apply runs one stage, substituting its fallback if it panics.
func (c *Composer) apply(field artlot.Field, stage artlot.Stage, in any) (out any, matched bool) {
	if stage.Apply == nil {
		return in, true
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("stage panicked",
				"field", field,
				"stage", stage.Name,
				"panic", r,
			)
			out, matched = stage.Fallback, false
		}
	}()
	return stage.Apply(in)
}

func isEmpty(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	}
	return false
}
