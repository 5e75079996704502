package core

import "strings"

// Parameter is a single labelled value shown by a host's status display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a host displays for one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter with the provided key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Lines renders one "Label: value" line per parameter, groups separated by
// their names.
func (s ParameterSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		if g.Name != "" {
			lines = append(lines, g.Name)
		}
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}

// Inline renders every parameter on a single line separated by sep.
func (s ParameterSnapshot) Inline(sep string) string {
	var parts []string
	for _, g := range s.Groups {
		for _, p := range g.Params {
			parts = append(parts, p.Label+" "+p.Value)
		}
	}
	return strings.Join(parts, sep)
}
