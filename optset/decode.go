package optset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// declaration is the YAML shape accepted by Decode.
type declaration struct {
	AutoHelp *bool         `yaml:"autohelp"`
	Options  []declaredOpt `yaml:"options"`
}

type declaredOpt struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
}

// Decode reads a YAML option declaration from r and returns the Set it
// describes. Unknown keys are rejected. opts are applied after the
// declaration, so they override its autohelp setting.
//
// Supported types: "" or "flag", "int", "int64", "float", "string".
func Decode(r io.Reader, opts ...SetOption) (*Set, error) {
	var decl declaration
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&decl); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("optset: decode declaration: %w", err)
	}

	setOpts := make([]SetOption, 0, len(opts)+1)
	if decl.AutoHelp != nil {
		setOpts = append(setOpts, WithAutoHelp(*decl.AutoHelp))
	}
	s := New(append(setOpts, opts...)...)

	for i, d := range decl.Options {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyName, i)
		}
		opt, err := declare(d)
		if err != nil {
			return nil, err
		}
		if !s.Add(opt) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOption, d.Name)
		}
	}
	return s, nil
}

// declare turns one declaration entry into an Option.
func declare(d declaredOpt) (Option, error) {
	switch strings.ToLower(d.Type) {
	case "", "flag":
		return NewFlag(d.Name, d.Required), nil
	case "int":
		return NewValue[int](d.Name, d.Required), nil
	case "int64":
		return NewValue[int64](d.Name, d.Required), nil
	case "float":
		return NewValue[float64](d.Name, d.Required), nil
	case "string":
		return NewValue[string](d.Name, d.Required), nil
	}
	return nil, fmt.Errorf("%w: %q for option %q", ErrUnknownType, d.Type, d.Name)
}
