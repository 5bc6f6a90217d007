package artlot

// Policy decides how a field's fragments are fed into its pipeline.
type Policy int

// Pipeline policies.
const (
	// EachFirst runs the chain once per fragment, in document order, and keeps
	// the first result for which every stage matched.
	EachFirst Policy = iota

	// JoinFirst joins all fragments into one normalized string and runs the
	// chain once.
	JoinFirst
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case JoinFirst:
		return "join"
	default:
		return "each"
	}
}

// Stage is one step of a field pipeline. Apply never signals failure other
// than through its matched result; on a miss it returns Fallback.
type Stage struct {
	Name     string
	Fallback any

	// Warn asks the composer to log a warning when the stage misses on
	// non-empty input.
	Warn bool

	Apply func(in any) (out any, matched bool)
}

// Warned returns a copy of the stage with Warn set.
func (s Stage) Warned() Stage {
	s.Warn = true
	return s
}

// StageOf builds a stage from a typed extractor. An input of the wrong type
// is a miss and yields the zero value of Out.
func StageOf[In, Out any](name string, fn func(In) (Out, bool)) Stage {
	var zero Out
	return Stage{
		Name:     name,
		Fallback: zero,
		Apply: func(in any) (any, bool) {
			v, ok := in.(In)
			if !ok {
				return zero, false
			}
			return fn(v)
		},
	}
}

// Pipeline is the ordered chain of stages that turns a field's fragments into
// its final value.
type Pipeline struct {
	Policy Policy
	Stages []Stage
}

// Each returns a pipeline applying stages to each fragment independently.
func Each(stages ...Stage) *Pipeline {
	return &Pipeline{Policy: EachFirst, Stages: stages}
}

// Joined returns a pipeline applying stages to the joined fragments.
func Joined(stages ...Stage) *Pipeline {
	return &Pipeline{Policy: JoinFirst, Stages: stages}
}

// Fallback returns the value the pipeline yields when nothing matches.
func (p *Pipeline) Fallback() any {
	if p == nil || len(p.Stages) == 0 {
		return ""
	}
	return p.Stages[len(p.Stages)-1].Fallback
}

// FieldSpec binds a field to its pipeline. A nil pipeline copies the
// normalized text of the fragments.
type FieldSpec struct {
	Field    Field
	Pipeline *Pipeline
}

// Schema is the per-house table of field pipelines. Schemas are built once
// and shared read-only between records.
type Schema struct {
	House  House
	Name   string
	Fields []FieldSpec
}

// Validate returns an error if the schema cannot be used for assembly.
func (s *Schema) Validate() error {
	if s.House == HouseUnknown {
		return Errorf(EINVALID, "schema house required")
	}
	if len(s.Fields) == 0 {
		return Errorf(EINVALID, "schema %q declares no fields", s.House)
	}
	seen := make(map[Field]bool, len(s.Fields))
	for _, spec := range s.Fields {
		if spec.Field == "" {
			return Errorf(EINVALID, "schema %q has an unnamed field", s.House)
		}
		if seen[spec.Field] {
			return Errorf(EINVALID, "schema %q declares field %q twice", s.House, spec.Field)
		}
		seen[spec.Field] = true
	}
	return nil
}

// FieldNames returns the declared fields in order.
func (s *Schema) FieldNames() []Field {
	names := make([]Field, 0, len(s.Fields))
	for _, spec := range s.Fields {
		names = append(names, spec.Field)
	}
	return names
}

// SchemaRegistry manages the schemas of the supported houses.
type SchemaRegistry interface {
	// Get returns the schema for a house.
	// Returns nil if no schema is registered for the house.
	Get(house House) *Schema

	// Register adds a schema, replacing any schema of the same house.
	Register(schema *Schema)

	// List returns all registered houses.
	List() []House
}
