package dlxcc

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: an empty problem is trivially satisfiable with the empty solution.
func TestFindOne_EmptyProblem(t *testing.T) {
	m, err := Build[string, string](nil, nil)
	require.NoError(t, err)

	solution, ok := m.FindOne()
	require.True(t, ok)
	assert.Empty(t, solution)
}

// S2: a single primary item covered by a single subset.
func TestFindOne_Trivial(t *testing.T) {
	items := []Item[string]{{ID: "1", Kind: Primary}}
	subsets := []Subset[string, string]{
		{Name: "A", Constraints: []Constraint[string]{Prim("1")}},
	}
	m, err := Build(items, subsets)
	require.NoError(t, err)

	solution, ok := m.FindOne()
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, solution)
}

// S3: MRV picks the item with only one covering subset first (r via s1),
// forcing the unique cover {s1, s3}.
func TestFindOne_MRVChoice(t *testing.T) {
	items := []Item[string]{
		{ID: "p", Kind: Primary},
		{ID: "q", Kind: Primary},
		{ID: "r", Kind: Primary},
	}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("p"), Prim("q")}},
		{Name: "s1", Constraints: []Constraint[string]{Prim("p"), Prim("r")}},
		{Name: "s2", Constraints: []Constraint[string]{Prim("p")}},
		{Name: "s3", Constraints: []Constraint[string]{Prim("q")}},
	}
	m, err := Build(items, subsets)
	require.NoError(t, err)

	solution, ok := m.FindOne()
	require.True(t, ok)
	sort.Strings(solution)
	assert.Equal(t, []string{"s1", "s3"}, solution)
}

// S4: only s0/s3 agree on item a's color.
func TestFindOne_Colors(t *testing.T) {
	items := []Item[string]{
		{ID: "p", Kind: Primary},
		{ID: "q", Kind: Primary},
		{ID: "a", Kind: Secondary},
	}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("p"), Sec("a", 1)}},
		{Name: "s1", Constraints: []Constraint[string]{Prim("p"), Sec("a", 2)}},
		{Name: "s2", Constraints: []Constraint[string]{Prim("q"), Sec("a", 3)}},
		{Name: "s3", Constraints: []Constraint[string]{Prim("q"), Sec("a", 1)}},
	}
	m, err := Build(items, subsets)
	require.NoError(t, err)

	solution, ok := m.FindOne()
	require.True(t, ok)
	sort.Strings(solution)
	assert.Equal(t, []string{"s0", "s3"}, solution)
}

func TestFindAllWithColors_ReportsAgreedColor(t *testing.T) {
	items := []Item[string]{
		{ID: "p", Kind: Primary},
		{ID: "q", Kind: Primary},
		{ID: "a", Kind: Secondary},
	}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("p"), Sec("a", 1)}},
		{Name: "s1", Constraints: []Constraint[string]{Prim("p"), Sec("a", 2)}},
		{Name: "s2", Constraints: []Constraint[string]{Prim("q"), Sec("a", 3)}},
		{Name: "s3", Constraints: []Constraint[string]{Prim("q"), Sec("a", 1)}},
	}
	m, err := Build(items, subsets)
	require.NoError(t, err)

	var solutions [][]string
	var colorMaps []map[string]int
	for solution, colors := range m.FindAllWithColors() {
		solutions = append(solutions, append([]string(nil), solution...))
		colorMaps = append(colorMaps, colors)
	}
	require.Len(t, solutions, 1)
	assert.Equal(t, map[string]int{"a": 1}, colorMaps[0])
}

func TestFindAll_Unsatisfiable(t *testing.T) {
	items := []Item[string]{{ID: "p", Kind: Primary}}
	m, err := Build[string, string](items, nil)
	require.NoError(t, err)

	_, ok := m.FindOne()
	assert.False(t, ok)

	count := 0
	for range m.FindAll() {
		count++
	}
	assert.Zero(t, count)
}

func TestFindAll_CancelUnwindsMatrix(t *testing.T) {
	items := []Item[string]{{ID: "p", Kind: Primary}}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("p")}},
		{Name: "s1", Constraints: []Constraint[string]{Prim("p")}},
	}
	m, err := Build(items, subsets)
	require.NoError(t, err)

	for range m.FindAll() {
		break // cancel after the first solution
	}

	// The matrix must be fully restored: a fresh search still finds a
	// one-option solution rather than tripping over leftover state.
	solution, ok := m.FindOne()
	require.True(t, ok)
	assert.Len(t, solution, 1)
}

func TestBuild_RejectsDuplicateItem(t *testing.T) {
	items := []Item[string]{{ID: "p", Kind: Primary}, {ID: "p", Kind: Primary}}
	_, err := Build[string, string](items, nil)
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestBuild_RejectsDuplicateSubsetName(t *testing.T) {
	items := []Item[string]{{ID: "p", Kind: Primary}}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("p")}},
		{Name: "s0", Constraints: []Constraint[string]{Prim("p")}},
	}
	_, err := Build(items, subsets)
	assert.ErrorIs(t, err, ErrDuplicateSubset)
}

func TestBuild_RejectsUnknownItem(t *testing.T) {
	items := []Item[string]{{ID: "p", Kind: Primary}}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("ghost")}},
	}
	_, err := Build(items, subsets)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestBuild_RejectsKindMismatch(t *testing.T) {
	items := []Item[string]{{ID: "p", Kind: Primary}}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Sec("p", 0)}},
	}
	_, err := Build(items, subsets)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestBuild_RejectsEmptySubset(t *testing.T) {
	items := []Item[string]{{ID: "p", Kind: Primary}}
	subsets := []Subset[string, string]{{Name: "s0"}}
	_, err := Build(items, subsets)
	assert.ErrorIs(t, err, ErrEmptySubset)
}

func TestStats_DebugLogsPrimitivesAndSolutionCount(t *testing.T) {
	items := []Item[string]{
		{ID: "p", Kind: Primary},
		{ID: "q", Kind: Primary},
	}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("p")}},
		{Name: "s1", Constraints: []Constraint[string]{Prim("q")}},
	}
	m, err := Build(items, subsets)
	require.NoError(t, err)

	var buf bytes.Buffer
	stats := &Stats{Debug: true, Logger: zerolog.New(&buf)}
	m.WithStats(stats)

	solution, ok := m.FindOne()
	require.True(t, ok)
	sort.Strings(solution)
	assert.Equal(t, []string{"s0", "s1"}, solution)

	out := buf.String()
	assert.Contains(t, out, "cover(i=")
	assert.Contains(t, out, "solution emitted")
	assert.Contains(t, out, `"solutions":1`)
	assert.Equal(t, int64(1), stats.Solutions)
}

func TestStats_ProgressLogsPeriodicEstimate(t *testing.T) {
	items := []Item[string]{{ID: "p", Kind: Primary}}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("p")}},
		{Name: "s1", Constraints: []Constraint[string]{Prim("p")}},
	}
	m, err := Build(items, subsets)
	require.NoError(t, err)

	var buf bytes.Buffer
	stats := &Stats{Progress: true, Delta: 1, Logger: zerolog.New(&buf)}
	m.WithStats(stats)

	count := 0
	for range m.FindAll() {
		count++
	}
	assert.Equal(t, 2, count)
	assert.True(t, strings.Contains(buf.String(), "est="), "expected a progress estimate log, got %q", buf.String())
}

func TestStats_DebugDumpsArenaOnAttachAndOnVerboseProgress(t *testing.T) {
	items := []Item[string]{{ID: "p", Kind: Primary}}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("p")}},
	}
	m, err := Build(items, subsets)
	require.NoError(t, err)

	var buf bytes.Buffer
	m.WithStats(&Stats{Debug: true, Progress: true, Verbosity: 1, Delta: 1, Logger: zerolog.New(&buf)})

	initialDump := buf.String()
	assert.Contains(t, initialDump, "headers:")
	assert.Contains(t, initialDump, "nodes:")

	buf.Reset()
	_, ok := m.FindOne()
	require.True(t, ok)
	assert.Contains(t, buf.String(), "headers:", "expected a verbose progress log to include a full arena dump")
}

func TestDebugValidate_HoldsThroughSearch(t *testing.T) {
	items := []Item[string]{
		{ID: "p", Kind: Primary},
		{ID: "q", Kind: Primary},
		{ID: "a", Kind: Secondary},
	}
	subsets := []Subset[string, string]{
		{Name: "s0", Constraints: []Constraint[string]{Prim("p"), Sec("a", 1)}},
		{Name: "s1", Constraints: []Constraint[string]{Prim("p"), Sec("a", 2)}},
		{Name: "s2", Constraints: []Constraint[string]{Prim("q"), Sec("a", 3)}},
		{Name: "s3", Constraints: []Constraint[string]{Prim("q"), Sec("a", 1)}},
	}
	m, err := Build(items, subsets)
	require.NoError(t, err)
	require.NoError(t, m.DebugValidate())

	for range m.FindAll() {
		require.NoError(t, m.DebugValidate())
	}
	require.NoError(t, m.DebugValidate())
}
