// Package optset declares a fixed set of long command-line options and
// parses arguments against it.
//
// What:
//
//   - Flag        - an option without a value: --verbose
//   - Value[T]    - a typed option: --count=3 or --count 3
//   - Set         - the declared options keyed by name, parsed in one call
//   - Decode      - builds a Set from a YAML declaration
//
// Parsing rules:
//
//   - "--name=value" splits at the first '='. A Flag accepts only an empty
//     value ("--name=").
//   - "--name" consumes the following argument when the option needs one.
//   - Arguments not starting with "--" are ignored.
//   - Options declared Required must be set by the end of Parse.
//   - With auto-help enabled (the default), looking up "help" prints the
//     option list to the help writer before resolving the option.
//
// Declaration format (Decode):
//
//	autohelp: true
//	options:
//	  - name: help
//	  - name: ival
//	    type: int
//	  - name: sval
//	    type: string
//	    required: true
//
// Errors:
//
//   - ErrUnknownOption, ErrValueRequired, ErrUnexpectedValue, ErrBadValue,
//     ErrMissingRequired: argument parsing.
//   - ErrUnknownType, ErrDuplicateOption, ErrEmptyName, ErrWrongType:
//     declarations and typed lookups.
package optset
