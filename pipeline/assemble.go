package pipeline

import (
	"context"
	"log/slog"

	"github.com/fwojciec/artlot"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of records AssembleAll builds at once when
// no limit is set.
const DefaultConcurrency = 10

// Assembler builds records from fragments according to a schema.
type Assembler struct {
	Composer    *Composer
	Concurrency int
}

// NewAssembler creates an Assembler that logs through logger.
func NewAssembler(logger *slog.Logger) *Assembler {
	return &Assembler{Composer: NewComposer(logger)}
}

// Assemble resolves every field the schema declares, in declared order, and
// returns the record. Fields absent from fragments resolve to their fallback,
// so the record always carries the complete field set. A nil schema yields an
// empty record.
func (a *Assembler) Assemble(schema *artlot.Schema, fragments artlot.Fragments) *artlot.Record {
	if schema == nil {
		return artlot.NewRecord(artlot.HouseUnknown, nil)
	}
	composer := a.Composer
	if composer == nil {
		composer = discard
	}

	values := make([]artlot.FieldValue, 0, len(schema.Fields))
	for _, spec := range schema.Fields {
		v, ok := composer.Compose(spec.Field, spec.Pipeline, fragments[spec.Field])
		values = append(values, artlot.FieldValue{Field: spec.Field, Value: v, Matched: ok})
	}
	return artlot.NewRecord(schema.House, values)
}

// AssembleAll assembles one record per fragment set, keeping input order.
// Records are built concurrently. The only error is the cancellation of ctx.
func (a *Assembler) AssembleAll(ctx context.Context, schema *artlot.Schema, docs []artlot.Fragments) ([]*artlot.Record, error) {
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	records := make([]*artlot.Record, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = a.Assemble(schema, doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
