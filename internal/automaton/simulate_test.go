package automaton

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccepts(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a", []string{"a"}, []string{"", "b", "aa"}},
		{"a*", []string{"", "a", "aaaa"}, []string{"ab", "b"}},
		{"a|b", []string{"a", "b"}, []string{"c", "", "ab"}},
		{"(a|b)*c", []string{"c", "aabbc", "abababc"}, []string{"aabb", "", "cc", "ca"}},
		{"ab", []string{"ab"}, []string{"a", "b", "abb"}},
		{"a|b*c", []string{"a", "c", "bbc"}, []string{"bb", "ac"}},
		{"(ab)*", []string{"", "ab", "abab"}, []string{"a", "aba"}},
		{"(a*)*", []string{"", "aaa"}, []string{"b"}},
		{"x(0|1)*y", []string{"xy", "x0110y"}, []string{"x2y", "x01"}},
		{"ñ*", []string{"", "ññ"}, []string{"n"}},
	}
	for _, test := range tests {
		t.Run(test.pattern, func(t *testing.T) {
			n := MustCompileRegex(test.pattern)
			for _, in := range test.accept {
				assert.True(t, n.Accepts(in), "%q should accept %q", test.pattern, in)
			}
			for _, in := range test.reject {
				assert.False(t, Accepts(n, in), "%q should reject %q", test.pattern, in)
			}
		})
	}
}

func TestEpsilonClosure(t *testing.T) {
	n := MustCompileRegex("(a|b)*c")
	closure := EpsilonClosure(n, NewStateSet(n.Start()))
	require.True(t, closure.Has(n.Start()))
	// star entry, union entry, both literal starts, star exit, and c's start
	require.Len(t, closure, 6)
	require.True(t, EpsilonClosure(n, closure).Equal(closure))
}

func TestEpsilonClosureIdempotent(t *testing.T) {
	for _, pattern := range []string{"a", "a*", "(a|b)*c", "((a*)*|b)*"} {
		n := MustCompileRegex(pattern)
		for _, s := range n.States() {
			once := EpsilonClosure(n, NewStateSet(s))
			require.True(t, EpsilonClosure(n, once).Equal(once), "%s from %s", pattern, s)
		}
	}
}

func TestEpsilonClosureLeavesInputUntouched(t *testing.T) {
	n := MustCompileRegex("a*")
	in := NewStateSet(n.Start())
	EpsilonClosure(n, in)
	require.Len(t, in, 1)
}

func TestMoveIgnoresEpsilon(t *testing.T) {
	n := MustCompileRegex("a*")
	require.Empty(t, Move(n, NewStateSet(n.Start()), 'a'))
	require.Equal(t, []State{2}, Move(n, NewStateSet(1), 'a').Sorted())
	require.Empty(t, Move(n, NewStateSet(1), 'b'))
}

func TestAcceptsConcurrently(t *testing.T) {
	n := MustCompileRegex("(a|b)*c")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, n.Accepts("abababc"))
				assert.False(t, n.Accepts("ababab"))
			}
		}()
	}
	wg.Wait()
}
