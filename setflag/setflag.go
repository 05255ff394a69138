// Package setflag implements a flag.Value holding a set drawn from a
// fixed list of options.
package setflag

import (
	"fmt"
	"sort"
	"strings"
)

func New(options ...string) *SetFlag {
	sf := &SetFlag{
		values:  make(map[string]struct{}, len(options)),
		options: make(map[string]struct{}, len(options)),
	}
	for _, opt := range options {
		sf.options[opt] = struct{}{}
	}
	return sf
}

type SetFlag struct {
	options map[string]struct{}
	values  map[string]struct{}
}

// List returns the selected values, sorted for stable output.
func (sf *SetFlag) List() []string {
	values := make([]string, 0, len(sf.values))
	for v := range sf.values {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Empty reports whether no value has been selected.
func (sf *SetFlag) Empty() bool {
	return len(sf.values) == 0
}

func (sf *SetFlag) String() string {
	return strings.Join(sf.List(), ", ")
}

// Set accepts a single value or a comma-separated list of values, each
// of which must be one of the configured options.
func (sf *SetFlag) Set(value string) error {
	values := []string{value}
	if strings.Contains(value, ",") {
		values = strings.Split(value, ",")
		for i, str := range values {
			values[i] = strings.TrimSpace(str)
		}
	}
	for _, value := range values {
		if _, exists := sf.options[value]; !exists {
			return fmt.Errorf("unsupported value '%s'", value)
		}
		sf.values[value] = struct{}{}
	}
	return nil
}
