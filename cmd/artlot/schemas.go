package main

import (
	"fmt"
	"strings"
)

// Run executes the schemas command.
func (c *SchemasCmd) Run(deps *Dependencies) error {
	for _, house := range deps.Schemas.List() {
		schema := deps.Schemas.Get(house)
		if deps.Selectors.Get(house) == nil {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  (%d fields)\n", house, schema.Name, len(schema.Fields))
		if !c.Fields {
			continue
		}
		for _, spec := range schema.Fields {
			policy := "copy"
			if spec.Pipeline != nil {
				names := make([]string, 0, len(spec.Pipeline.Stages))
				for _, stage := range spec.Pipeline.Stages {
					names = append(names, stage.Name)
				}
				policy = spec.Pipeline.Policy.String() + ": " + strings.Join(names, " → ")
			}
			fmt.Fprintf(deps.Stdout, "  %-24s %s\n", spec.Field, policy)
		}
	}
	return nil
}
