package optset_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/optset"
)

// newDemoSet declares the options used by most tests:
// help, hi (required flag), ival (int), sval (required string).
func newDemoSet(t *testing.T, help io.Writer) *optset.Set {
	t.Helper()
	s := optset.New(optset.WithHelpOutput(help))
	require.True(t, s.Add(optset.NewFlag("help", false)))
	require.True(t, s.Add(optset.NewFlag("hi", true)))
	require.True(t, s.Add(optset.NewValue[int]("ival", false)))
	require.True(t, s.Add(optset.NewValue[string]("sval", true)))
	return s
}

// TestAdd_Duplicate rejects a second option with the same name.
func TestAdd_Duplicate(t *testing.T) {
	s := optset.New()
	assert.True(t, s.Add(optset.NewFlag("x", false)))
	assert.False(t, s.Add(optset.NewValue[int]("x", false)))
	assert.False(t, s.Add(nil))
	assert.Equal(t, []string{"x"}, s.Names())
}

// TestParse_Forms covers both "--k=v" and "--k v" forms.
func TestParse_Forms(t *testing.T) {
	s := newDemoSet(t, io.Discard)
	err := s.Parse([]string{"positional", "--hi", "--ival", "42", "--sval=a=b"})
	require.NoError(t, err)

	ival, set, err := optset.Get[int](s, "ival")
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 42, ival)

	sval, set, err := optset.Get[string](s, "sval")
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, "a=b", sval, "value splits at the first '='")

	hi, err := s.Lookup("hi")
	require.NoError(t, err)
	assert.True(t, hi.IsSet())
}

// TestParse_Errors drives each parse failure through its sentinel.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"Unknown", []string{"--nope"}, optset.ErrUnknownOption},
		{"FlagWithValue", []string{"--hi=yes", "--sval=x"}, optset.ErrUnexpectedValue},
		{"ValueMissingAtEnd", []string{"--hi", "--sval"}, optset.ErrValueRequired},
		{"ValueEmpty", []string{"--hi", "--sval="}, optset.ErrValueRequired},
		{"BadInt", []string{"--hi", "--sval=x", "--ival=abc"}, optset.ErrBadValue},
		{"MissingRequiredFlag", []string{"--sval=x"}, optset.ErrMissingRequired},
		{"MissingRequiredValue", []string{"--hi"}, optset.ErrMissingRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newDemoSet(t, io.Discard)
			assert.ErrorIs(t, s.Parse(tc.args), tc.want)
		})
	}
}

// TestParse_FlagEmptyValue accepts "--flag=" as a plain flag.
func TestParse_FlagEmptyValue(t *testing.T) {
	s := newDemoSet(t, io.Discard)
	require.NoError(t, s.Parse([]string{"--hi=", "--sval", "v"}))
}

// TestParse_AutoHelp prints the listing when "--help" is seen.
func TestParse_AutoHelp(t *testing.T) {
	var help bytes.Buffer
	s := newDemoSet(t, &help)
	require.NoError(t, s.Parse([]string{"--help", "--hi", "--sval=v"}))
	assert.Equal(t,
		"Options list (by autohelper):\n[help]\n hi \n[ival INT]\n sval STRING \n",
		help.String())

	help.Reset()
	quiet := optset.New(optset.WithAutoHelp(false), optset.WithHelpOutput(&help))
	quiet.Add(optset.NewFlag("help", false))
	require.NoError(t, quiet.Parse([]string{"--help"}))
	assert.Empty(t, help.String())
}

// TestPrint_WithValues shows the parsed state after parsing.
func TestPrint_WithValues(t *testing.T) {
	s := newDemoSet(t, io.Discard)
	require.NoError(t, s.Parse([]string{"--hi", "--ival=7", "--sval", "text"}))

	var out bytes.Buffer
	require.NoError(t, s.Print(&out, true))
	assert.Equal(t,
		"[help]\n hi  <set>\n[ival INT] = \"7\"\n sval STRING  = \"text\"\n",
		out.String())
}

// TestGet_Errors covers typed lookups on missing or mistyped options.
func TestGet_Errors(t *testing.T) {
	s := newDemoSet(t, io.Discard)
	_, _, err := optset.Get[int](s, "missing")
	assert.ErrorIs(t, err, optset.ErrUnknownOption)
	_, _, err = optset.Get[string](s, "ival")
	assert.ErrorIs(t, err, optset.ErrWrongType)
	_, _, err = optset.Get[int](s, "hi")
	assert.ErrorIs(t, err, optset.ErrWrongType)
}

// TestValue_Types parses every supported scalar type.
func TestValue_Types(t *testing.T) {
	i64 := optset.NewValue[int64]("big", false)
	require.NoError(t, i64.Set("9000000000"))
	assert.Equal(t, int64(9_000_000_000), i64.Get())
	assert.Equal(t, "[big INT64]", i64.Describe(false))

	f := optset.NewValue[float64]("ratio", true)
	require.NoError(t, f.Set(" 0.5 "))
	assert.Equal(t, 0.5, f.Get())
	assert.Equal(t, " ratio FLOAT  = \"0.5\"", f.Describe(true))

	bad := optset.NewValue[float64]("ratio", false)
	assert.ErrorIs(t, bad.Set("half"), optset.ErrBadValue)
	assert.False(t, bad.IsSet(), "failed Set must not mark the option")
}

// TestWithHelpOutput_NilPanics enforces the option-constructor contract.
func TestWithHelpOutput_NilPanics(t *testing.T) {
	assert.Panics(t, func() { optset.WithHelpOutput(nil) })
}
