package skillz_test

import (
	"testing"

	"github.com/pranav244872/jobboard/skillz"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

////////////////////////////////////////////////////////////////////////
// Test for Tokenize
////////////////////////////////////////////////////////////////////////

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Comma Separated",
			input: "Python, Django, React",
			want:  []string{"Python", "Django", "React"},
		},
		{
			name:  "Newline Separated",
			input: "Python\nDjango\r\nReact",
			want:  []string{"Python", "Django", "React"},
		},
		{
			name:  "Consecutive Delimiters Collapse",
			input: "a,,b,\n,c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "Whitespace Only Pieces Are Dropped",
			input: " Go ,   , SQL ",
			want:  []string{"Go", "SQL"},
		},
		{
			name:  "Internal Spaces Are Kept",
			input: "Machine Learning,  REST APIs ",
			want:  []string{"Machine Learning", "REST APIs"},
		},
		{
			name:  "Empty Input",
			input: "",
			want:  []string{},
		},
		{
			name:  "Only Delimiters",
			input: ",\r\n,,",
			want:  []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := skillz.Tokenize(tc.input)
			require.Equal(t, tc.want, got)
		})
	}
}

////////////////////////////////////////////////////////////////////////
// Test for Normalize
////////////////////////////////////////////////////////////////////////

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Lower Cases", input: "Python", want: "python"},
		{name: "Strips Trailing Dot", input: "Sketch.", want: "sketch"},
		{name: "Strips Trailing Run", input: "Figma.,.", want: "figma"},
		{name: "Trims Surrounding Spaces", input: "  C++  ", want: "c++"},
		{name: "Keeps Internal Punctuation", input: "Node.js", want: "node.js"},
		{name: "Keeps Leading Punctuation", input: ".NET", want: ".net"},
		{name: "Punctuation Only", input: " . ", want: ""},
		{name: "Empty", input: "", want: ""},
		{name: "Unicode", input: "ÉLAN", want: "élan"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := skillz.Normalize(tc.input)
			require.Equal(t, tc.want, got)

			// Normalizing an already normalized key must not change it.
			require.Equal(t, got, skillz.Normalize(got))
		})
	}
}

////////////////////////////////////////////////////////////////////////
// Test for ParseSkillSet
////////////////////////////////////////////////////////////////////////

func TestParseSkillSet(t *testing.T) {
	set := skillz.ParseSkillSet("Python, python., Go\n.\nSQL,")

	require.Equal(t, 3, set.Len())
	require.True(t, set.Contains("python"))
	require.True(t, set.Contains("go"))
	require.True(t, set.Contains("sql"))
	require.False(t, set.Contains("Python"))
	require.False(t, set.Contains(""))
	require.Equal(t, []string{"go", "python", "sql"}, set.Keys())
}

func TestParseSkillSetEmpty(t *testing.T) {
	set := skillz.ParseSkillSet("")
	require.Zero(t, set.Len())
	require.Empty(t, set.Keys())
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{"", "Sketch.", " C++ ", "a . ,", "Node.js", ".,.,", "ΟΔΟΣ", "\xff\xfe"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, token string) {
		once := skillz.Normalize(token)
		if twice := skillz.Normalize(once); twice != once {
			t.Fatalf("Normalize is not idempotent: %q -> %q -> %q", token, once, twice)
		}
	})
}
