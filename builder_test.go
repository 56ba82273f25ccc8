package huffman

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

const epsilon = 1e-9

// countsTable turns counts into a FrequencyTable over 'a', 'b', 'c', ...
func countsTable(counts []int) FrequencyTable {
	m := make(map[Symbol]int, len(counts))
	for i, n := range counts {
		m[Symbol('a'+i)] = n
	}
	ft, err := FrequenciesFromCounts(m)
	if err != nil {
		panic(err)
	}
	return ft
}

func mustBuild(t testing.TB, ft FrequencyTable) (*Tree, *CodeTable) {
	t.Helper()
	tree, err := BuildTree(ft)
	require.NoError(t, err)
	return tree, ExtractCodes(tree)
}

func expectedLength(ft FrequencyTable, sizes map[Symbol]int) float64 {
	var sum float64
	for sym, p := range ft {
		sum += p * float64(sizes[sym])
	}
	return sum
}

// bruteForceOptimum returns the least expected length over every assignment
// of lengths 1..n-1 that satisfies the Kraft inequality, i.e. over every
// prefix code for the symbols of ft.
func bruteForceOptimum(ft FrequencyTable) float64 {
	symbols := ft.Symbols()
	n := len(symbols)
	if n == 1 {
		return 1
	}
	lengths := make([]int, n)
	best := math.Inf(1)
	var recurse func(i int, kraft int64)
	recurse = func(i int, kraft int64) {
		if kraft > int64(1)<<(n-1) {
			return
		}
		if i == n {
			var sum float64
			for j, sym := range symbols {
				sum += ft[sym] * float64(lengths[j])
			}
			best = math.Min(best, sum)
			return
		}
		for l := 1; l < n; l++ {
			lengths[i] = l
			recurse(i+1, kraft+int64(1)<<(n-1-l))
		}
	}
	recurse(0, 0)
	return best
}

func TestBuildTree_Dump(t *testing.T) {
	tree, _ := mustBuild(t, FrequencyTable{'a': 0.5, 'b': 0.25, 'c': 0.25})

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal(1)\n",
		"\t  Leaf('a', 0.5)\n",
		"\t  Internal(0.5)\n",
		"\t    Leaf('b', 0.25)\n",
		"\t    Leaf('c', 0.25)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	assert.Equal(t, 3, tree.Leaves())
	assert.False(t, tree.Degenerate())
}

func TestBuildTree_ThreeSymbols(t *testing.T) {
	_, table := mustBuild(t, FrequencyTable{'a': 0.5, 'b': 0.25, 'c': 0.25})

	expectSizes := map[Symbol]int{'a': 1, 'b': 2, 'c': 2}
	if diff := cmp.Diff(expectSizes, table.SizeBySymbol()); diff != "" {
		t.Errorf("wrong sizes (-expect +actual):\n%s", diff)
	}
}

func TestBuildTree_FourSymbols(t *testing.T) {
	ft := FrequencyTable{'a': 0.4, 'b': 0.3, 'c': 0.2, 'd': 0.1}
	_, table := mustBuild(t, ft)

	sizes := table.SizeBySymbol()
	assert.Equal(t, 1, sizes['a'])
	assert.Equal(t, 2, sizes['b'])
	assert.Equal(t, 3, sizes['c'])
	assert.Equal(t, 3, sizes['d'])

	assert.InDelta(t, bruteForceOptimum(ft), expectedLength(ft, sizes), epsilon)
	assert.InDelta(t, 1.9, expectedLength(ft, sizes), epsilon)
}

func TestBuildTree_WeightInvariant(t *testing.T) {
	ft := countsTable([]int{5, 9, 12, 13, 16, 45})
	tree, _ := mustBuild(t, ft)

	var leafSum float64
	tree.Walk(func(n Node, depth int) {
		switch n := n.(type) {
		case *Leaf:
			leafSum += n.Weight()
		case *Internal:
			assert.Equal(t, n.Left().Weight()+n.Right().Weight(), n.Weight())
		}
	})
	assert.InDelta(t, leafSum, tree.Weight(), epsilon)
	assert.InDelta(t, 1.0, tree.Weight(), epsilon)
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree, table := mustBuild(t, FrequencyTable{'x': 1})

	assert.True(t, tree.Degenerate())
	assert.Equal(t, 1, tree.Leaves())

	hc, found := table.Encode('x')
	require.True(t, found)
	assert.Equal(t, DegenerateCode, hc)
	assert.NoError(t, table.Validate())
	assert.True(t, table.Complete())
}

func TestBuildTree_InvalidInput(t *testing.T) {
	type testRow struct {
		name   string
		freqs  FrequencyTable
		expect error
	}

	testData := [...]testRow{
		{name: "nil", freqs: nil, expect: ErrEmptyInput},
		{name: "empty", freqs: FrequencyTable{}, expect: ErrEmptyInput},
		{name: "zero", freqs: FrequencyTable{'a': 0, 'b': 1}, expect: ErrInvalidFrequency},
		{name: "negative", freqs: FrequencyTable{'a': -0.5, 'b': 1}, expect: ErrInvalidFrequency},
		{name: "too-large", freqs: FrequencyTable{'a': 1.5}, expect: ErrInvalidFrequency},
		{name: "nan", freqs: FrequencyTable{'a': math.NaN()}, expect: ErrInvalidFrequency},
		{name: "bad-symbol", freqs: FrequencyTable{-1: 0.5, 'a': 0.5}, expect: ErrInvalidFrequency},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree, err := BuildTree(row.freqs)
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
			if tree != nil {
				t.Errorf("expected nil tree, got %v", tree)
			}
		})
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	// Every weight ties, so only the tie-break decides the shape.
	ft := FrequencyTable{}
	for _, r := range "etaoinshrd" {
		ft[Symbol(r)] = 0.1
	}
	_, first := mustBuild(t, ft)
	for i := 0; i < 20; i++ {
		clone := FrequencyTable{}
		for sym, p := range ft {
			clone[sym] = p
		}
		_, again := mustBuild(t, clone)
		if diff := cmp.Diff(first.Map(), again.Map()); diff != "" {
			t.Fatalf("code table changed between runs (-first +again):\n%s", diff)
		}
	}
}

func TestBuildTree_SwapKeepsLengths(t *testing.T) {
	ft := FrequencyTable{'a': 0.45, 'b': 0.3, 'c': 0.15, 'd': 0.1}
	swapped := FrequencyTable{'a': 0.1, 'b': 0.3, 'c': 0.15, 'd': 0.45}

	_, table := mustBuild(t, ft)
	_, swappedTable := mustBuild(t, swapped)

	sizes := table.SizeBySymbol()
	swappedSizes := swappedTable.SizeBySymbol()
	assert.Equal(t, sizes['a'], swappedSizes['d'])
	assert.Equal(t, sizes['d'], swappedSizes['a'])
	assert.Equal(t, sizes['b'], swappedSizes['b'])
	assert.Equal(t, sizes['c'], swappedSizes['c'])
}

func TestBuildTree_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("codes are prefix-free and complete", prop.ForAll(
		func(counts []int) bool {
			if len(counts) < 2 {
				return true
			}
			_, table := mustBuild(t, countsTable(counts))
			return table.Len() == len(counts) && table.Validate() == nil && table.Complete()
		},
		gen.SliceOf(gen.IntRange(1, 1000)),
	))

	properties.Property("internal weights are sums and the root holds all mass", prop.ForAll(
		func(counts []int) bool {
			if len(counts) == 0 {
				return true
			}
			tree, _ := mustBuild(t, countsTable(counts))
			ok := true
			var leafSum float64
			tree.Walk(func(n Node, _ int) {
				switch n := n.(type) {
				case *Leaf:
					leafSum += n.Weight()
				case *Internal:
					ok = ok && n.Weight() == n.Left().Weight()+n.Right().Weight()
				}
			})
			return ok && math.Abs(leafSum-tree.Weight()) < epsilon
		},
		gen.SliceOf(gen.IntRange(1, 1000)),
	))

	properties.Property("expected length is within one bit of the entropy", prop.ForAll(
		func(counts []int) bool {
			if len(counts) < 2 {
				return true
			}
			ft := countsTable(counts)
			_, table := mustBuild(t, ft)
			st, err := ComputeStats(ft, table)
			return err == nil && st.ExpectedLength >= st.Entropy-epsilon && st.ExpectedLength < st.Entropy+1
		},
		gen.SliceOf(gen.IntRange(1, 1000)),
	))

	properties.Property("expected length matches the brute-force optimum", prop.ForAll(
		func(counts []int) bool {
			ft := countsTable(counts)
			_, table := mustBuild(t, ft)
			return math.Abs(bruteForceOptimum(ft)-expectedLength(ft, table.SizeBySymbol())) < epsilon
		},
		gen.SliceOfN(6, gen.IntRange(1, 100)),
	))

	properties.Property("swapping two frequencies keeps the expected length", prop.ForAll(
		func(counts []int, i, j int) bool {
			i, j = i%len(counts), j%len(counts)
			swapped := slices.Clone(counts)
			swapped[i], swapped[j] = swapped[j], swapped[i]

			ft, ftSwapped := countsTable(counts), countsTable(swapped)
			_, table := mustBuild(t, ft)
			_, tableSwapped := mustBuild(t, ftSwapped)
			return math.Abs(expectedLength(ft, table.SizeBySymbol())-expectedLength(ftSwapped, tableSwapped.SizeBySymbol())) < epsilon
		},
		gen.SliceOfN(8, gen.IntRange(1, 100)),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
