package optset

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Set is a collection of declared options keyed by name.
type Set struct {
	options  map[string]Option
	autoHelp bool
	helpOut  io.Writer
}

// SetOption configures a Set at construction.
type SetOption func(*Set)

// WithAutoHelp toggles printing the option list when "help" is looked up.
func WithAutoHelp(on bool) SetOption {
	return func(s *Set) { s.autoHelp = on }
}

// WithHelpOutput redirects the auto-help listing. Panics on nil.
func WithHelpOutput(w io.Writer) SetOption {
	if w == nil {
		panic("optset: WithHelpOutput(nil)")
	}
	return func(s *Set) { s.helpOut = w }
}

// New returns an empty Set. Auto-help is on and writes to os.Stderr unless
// overridden.
func New(opts ...SetOption) *Set {
	s := &Set{
		options:  make(map[string]Option),
		autoHelp: true,
		helpOut:  os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add declares opt. It returns false, leaving the set unchanged, when opt
// is nil or an option with the same name already exists.
func (s *Set) Add(opt Option) bool {
	if opt == nil {
		return false
	}
	if _, dup := s.options[opt.Name()]; dup {
		return false
	}
	s.options[opt.Name()] = opt
	return true
}

// Names returns the declared option names in ascending order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.options))
	for name := range s.options {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the option called name.
//
// With auto-help enabled, looking up "help" first prints the option list to
// the help writer; the "help" option must still be declared to be found.
func (s *Set) Lookup(name string) (Option, error) {
	if s.autoHelp && name == "help" {
		fmt.Fprintln(s.helpOut, "Options list (by autohelper):")
		_ = s.Print(s.helpOut, false)
	}
	opt, ok := s.options[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	return opt, nil
}

// Parse applies args (without the program name) to the declared options
// and then verifies every required option was set. Parsing stops at the
// first error.
func (s *Set) Parse(args []string) error {
	for i := 0; i < len(args); i++ {
		key, ok := strings.CutPrefix(args[i], "--")
		if !ok {
			continue
		}
		name, value, hasValue := strings.Cut(key, "=")
		if name == "" || strings.ContainsAny(name, " \t\r\n") {
			continue
		}

		opt, err := s.Lookup(name)
		if err != nil {
			return err
		}
		switch {
		case hasValue && opt.NeedsValue():
			err = opt.Set(value)
		case hasValue && value != "":
			err = fmt.Errorf("%w: option %q", ErrUnexpectedValue, name)
		case hasValue, !opt.NeedsValue():
			err = opt.Set("")
		case i+1 < len(args):
			i++
			err = opt.Set(args[i])
		default:
			err = fmt.Errorf("%w: option %q", ErrValueRequired, name)
		}
		if err != nil {
			return err
		}
	}

	for _, name := range s.Names() {
		if opt := s.options[name]; opt.Required() && !opt.IsSet() {
			return fmt.Errorf("%w: %q", ErrMissingRequired, name)
		}
	}
	return nil
}

// Print writes one line per option, sorted by name. withValues appends the
// parsed state of every option that was set.
func (s *Set) Print(w io.Writer, withValues bool) error {
	var sb strings.Builder
	for _, name := range s.Names() {
		sb.WriteString(s.options[name].Describe(withValues))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Get returns the typed value of the option called name and whether it was
// set. ErrWrongType is returned when the option is not a Value[T].
func Get[T Scalar](s *Set, name string) (T, bool, error) {
	var zero T
	opt, ok := s.options[name]
	if !ok {
		return zero, false, fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	v, ok := opt.(*Value[T])
	if !ok {
		return zero, false, fmt.Errorf("%w: %q", ErrWrongType, name)
	}
	return v.Get(), v.IsSet(), nil
}
