package productcode

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hashPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"letters only", "abc", "abc"},
		{"mixed case", "AbC", "abc"},
		{"strips digits and punctuation", "a1-b2_c3!", "abc"},
		{"strips whitespace", "Wireless Mouse", "wirelessmouse"},
		{"uppercase letters are kept", "abcXdeY", "abcxdey"},
		{"non-ascii letters are dropped", "Crème Brûlée", "crmebrle"},
		{"nothing alphabetic", "!!!123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestLongestIncreasingRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Run
	}{
		{"empty", "", Run{}},
		{"no letters", "!!!123", Run{}},
		{"single letter", "a", Run{Substring: "a", StartIndex: 0, EndIndex: 0}},
		{"whole string ascends", "abc", Run{Substring: "abc", StartIndex: 0, EndIndex: 2}},
		{"all ties at length one", "cba", Run{Substring: "cba", StartIndex: 0, EndIndex: 2}},
		{"repeated equal runs", "abab", Run{Substring: "abab", StartIndex: 0, EndIndex: 3}},
		{"equal letters break a run", "aabb", Run{Substring: "ab", StartIndex: 0, EndIndex: 3}},
		{"longest run in the middle", "zebra", Run{Substring: "br", StartIndex: 2, EndIndex: 3}},
		{"uppercase joins the run", "abcXdeY", Run{Substring: "abcx", StartIndex: 0, EndIndex: 3}},
		{"indices point into the original name", "Wireless Mouse", Run{Substring: "mou", StartIndex: 9, EndIndex: 11}},
		{"indices are found by search", "Organic Green Tea", Run{Substring: "cgrent", StartIndex: 6, EndIndex: 14}},
		{"indices count utf-16 units", "😀abc", Run{Substring: "abc", StartIndex: 2, EndIndex: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestIncreasingRun(tt.input))
		})
	}
}

func TestLongestIncreasingRun_UsesNormalizedName(t *testing.T) {
	for _, name := range []string{"Crème Brûlée", "a1-b2_c3!", "Wireless Mouse", "!!!123", "ÀBC déf"} {
		normalized := Normalize(name)
		run := LongestIncreasingRun(name)
		if normalized == "" {
			assert.Equal(t, Run{}, run, name)
			continue
		}
		for _, r := range run.Substring {
			assert.Contains(t, normalized, string(r), name)
		}
		assert.LessOrEqual(t, len(run.Substring), len(normalized), name)
	}
}

func TestContentHash(t *testing.T) {
	assert.Equal(t, "90015098", ContentHash("abc"))
	assert.Equal(t, "d41d8cd9", ContentHash(""))

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, ContentHash("abc"), ContentHash("ABC"))
	})

	t.Run("always eight lowercase hex characters", func(t *testing.T) {
		for _, name := range []string{"", "a", "Wireless Mouse", "Crème Brûlée", "😀", "!!!123"} {
			assert.Regexp(t, hashPattern, ContentHash(name), "name %q", name)
		}
	})
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "d41d8cd9-00"},
		{"!!!123", "4ae240bd-00"},
		{"abc", "90015098-0abc2"},
		{"cba", "3944b025-0cba2"},
		{"abcXdeY", "001d63e2-0abcx3"},
		{"a", "0cc175b9-0a0"},
		{"zebra", "69c459dd-2br3"},
		{"Wireless Mouse", "624bdd4f-9mou11"},
		{"Organic Green Tea", "894d28ba-6cgrent14"},
		{"Crème Brûlée", "d83e360a-0crbr7"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.input))
		})
	}
}

func TestGenerate_Shape(t *testing.T) {
	codePattern := regexp.MustCompile(`^[0-9a-f]{8}-\d+[a-z]*\d+$`)

	for _, name := range []string{"", "x", "Gaming Keyboard RGB", "123 456", "ÅÄÖ", "a-b-c-d"} {
		code := Generate(name)
		require.Regexp(t, codePattern, code, "name %q", name)
		assert.Equal(t, ContentHash(name), code[:HashLength])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	names := []string{"", "abc", "Wireless Mouse", "Crème Brûlée", "abcXdeY"}

	for _, name := range names {
		first := Generate(name)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Generate(name))
		}
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	want := Generate("Wireless Mouse")

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Generate("Wireless Mouse")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
