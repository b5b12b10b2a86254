package neighbors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/neighbors"
)

func mustGrid(t testing.TB, cells []uint32, width uint32) *grid.Grid {
	t.Helper()
	g, err := grid.New(cells, width)
	require.NoError(t, err)
	return g
}

func mustLayered(t testing.TB, cells []uint32, width, height uint32) *grid.Grid {
	t.Helper()
	g, err := grid.NewLayered(cells, width, height)
	require.NoError(t, err)
	return g
}

func ones(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

//----------------------------------------------------------------------------//
// Mode
//----------------------------------------------------------------------------//

func TestMode_StringAndParse(t *testing.T) {
	assert.Equal(t, "omnidirectional", neighbors.Omnidirectional.String())
	assert.Equal(t, "cardinal", neighbors.CardinalOnly.String())
	assert.Equal(t, "Mode(7)", neighbors.Mode(7).String())

	for _, s := range []string{"omni", "Omnidirectional", " 8 "} {
		m, err := neighbors.ParseMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, neighbors.Omnidirectional, m)
	}
	for _, s := range []string{"cardinal", "CARDINAL-ONLY", "4"} {
		m, err := neighbors.ParseMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, neighbors.CardinalOnly, m)
	}
	_, err := neighbors.ParseMode("hex")
	assert.ErrorIs(t, err, neighbors.ErrUnknownMode)

	assert.Equal(t, 8, neighbors.Omnidirectional.Degree())
	assert.Equal(t, 4, neighbors.CardinalOnly.Degree())
}

//----------------------------------------------------------------------------//
// Construction errors
//----------------------------------------------------------------------------//

func TestNewPolicy_Errors(t *testing.T) {
	flat := mustGrid(t, ones(4), 2)
	stacked := mustLayered(t, ones(8), 2, 2) // two floors of 2×2

	cases := []struct {
		name string
		g    *grid.Grid
		mode neighbors.Mode
		opts []neighbors.Option
		err  error
	}{
		{"NilGrid", nil, neighbors.Omnidirectional, nil, neighbors.ErrNilGrid},
		{"UnknownMode", flat, neighbors.Mode(3), nil, neighbors.ErrUnknownMode},
		{"NegativeWorkers", flat, neighbors.CardinalOnly, []neighbors.Option{neighbors.WithWorkers(-1)}, neighbors.ErrOptionViolation},
		{"WorkersOnPolicy", flat, neighbors.CardinalOnly, []neighbors.Option{neighbors.WithWorkers(4)}, neighbors.ErrOptionViolation},
		{"UpLinkOnSingleFloor", flat, neighbors.Omnidirectional,
			[]neighbors.Option{neighbors.WithLinks(neighbors.NewLinks([]uint32{0}, nil))}, neighbors.ErrInvalidLink},
		{"UpLinkOnTopFloor", stacked, neighbors.Omnidirectional,
			[]neighbors.Option{neighbors.WithLinks(neighbors.NewLinks([]uint32{5}, nil))}, neighbors.ErrInvalidLink},
		{"DownLinkOnGroundFloor", stacked, neighbors.Omnidirectional,
			[]neighbors.Option{neighbors.WithLinks(neighbors.NewLinks(nil, []uint32{1}))}, neighbors.ErrInvalidLink},
		{"LinkOutOfBounds", stacked, neighbors.Omnidirectional,
			[]neighbors.Option{neighbors.WithLinks(neighbors.NewLinks([]uint32{99}, nil))}, neighbors.ErrInvalidLink},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := neighbors.NewPolicy(tc.g, tc.mode, tc.opts...)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, p)
		})
	}
}

//----------------------------------------------------------------------------//
// Planar enumeration
//----------------------------------------------------------------------------//

// TestPolicy_OpenGrid pins the enumeration order on an open 3×3 grid.
func TestPolicy_OpenGrid(t *testing.T) {
	g := mustGrid(t, ones(9), 3)
	omni, err := neighbors.NewPolicy(g, neighbors.Omnidirectional)
	require.NoError(t, err)
	card, err := neighbors.NewPolicy(g, neighbors.CardinalOnly)
	require.NoError(t, err)

	cases := []struct {
		idx  uint32
		omni []uint32
		card []uint32
	}{
		{4, []uint32{1, 0, 2, 3, 5, 7, 6, 8}, []uint32{1, 3, 5, 7}},
		{0, []uint32{1, 3, 4}, []uint32{1, 3}},
		{2, []uint32{1, 5, 4}, []uint32{1, 5}},
		{8, []uint32{5, 4, 7}, []uint32{5, 7}},
		{7, []uint32{4, 3, 5, 6, 8}, []uint32{4, 6, 8}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.omni, omni.Neighbors(tc.idx, nil), "omni %d", tc.idx)
		assert.Equal(t, tc.card, card.Neighbors(tc.idx, nil), "cardinal %d", tc.idx)
	}
}

// TestPolicy_CornerCutting shows that a diagonal is accepted even when both
// flanking cells are walls.
func TestPolicy_CornerCutting(t *testing.T) {
	g := mustGrid(t, []uint32{
		1, 0, 1, 1,
		1, 0, 1, 1,
		1, 0, 1, 1,
		1, 1, 1, 1,
	}, 4)
	omni, _ := neighbors.NewPolicy(g, neighbors.Omnidirectional)
	card, _ := neighbors.NewPolicy(g, neighbors.CardinalOnly)

	assert.Equal(t, []uint32{4, 12, 13}, omni.Neighbors(8, nil))
	assert.Equal(t, []uint32{4, 12}, card.Neighbors(8, nil))
	assert.Equal(t, []uint32{4}, omni.Neighbors(0, nil), "walls are never neighbors")

	// Tight corner: 0 and 3 touch diagonally only.
	tight := mustGrid(t, []uint32{
		1, 0,
		0, 1,
	}, 2)
	p, _ := neighbors.NewPolicy(tight, neighbors.Omnidirectional)
	assert.Equal(t, []uint32{3}, p.Neighbors(0, nil))
}

// TestPolicy_ReusesBuffer checks that enumeration writes into the given buffer.
func TestPolicy_ReusesBuffer(t *testing.T) {
	g := mustGrid(t, ones(9), 3)
	p, _ := neighbors.NewPolicy(g, neighbors.Omnidirectional)

	buf := make([]uint32, 0, p.Capacity())
	out := p.Neighbors(4, buf)
	require.Len(t, out, 8)
	assert.Same(t, &buf[:1][0], &out[0], "result must alias the buffer")

	out = p.Neighbors(0, out)
	assert.Equal(t, []uint32{1, 3, 4}, out)

	allocs := testing.AllocsPerRun(100, func() {
		out = p.Neighbors(4, out)
	})
	assert.Zero(t, allocs)
}

// TestPolicy_FloorBoundaries ensures planar enumeration never crosses floors.
func TestPolicy_FloorBoundaries(t *testing.T) {
	g := mustLayered(t, ones(8), 2, 2)
	p, err := neighbors.NewPolicy(g, neighbors.Omnidirectional)
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 1, 3}, p.Neighbors(2, nil), "last row of floor 0")
	assert.Equal(t, []uint32{5, 6, 7}, p.Neighbors(4, nil), "first row of floor 1")
}

//----------------------------------------------------------------------------//
// Vertical links
//----------------------------------------------------------------------------//

func TestPolicy_VerticalLinks(t *testing.T) {
	g := mustLayered(t, ones(8), 2, 2)
	links := neighbors.NewLinks([]uint32{1}, []uint32{5})
	p, err := neighbors.NewPolicy(g, neighbors.Omnidirectional, neighbors.WithLinks(links))
	require.NoError(t, err)
	require.Same(t, links, p.Links())
	assert.Equal(t, 24, p.Capacity())

	// 0 reaches the linked cell 1 horizontally, hence also 1+4.
	assert.Equal(t, []uint32{1, 2, 3, 5}, p.Neighbors(0, nil))
	// 4 reaches the down-linked cell 5, hence also 5-4.
	assert.Equal(t, []uint32{5, 6, 7, 1}, p.Neighbors(4, nil))
	// The linked cell itself only gets vertical moves through linked neighbors.
	assert.Equal(t, []uint32{0, 3, 2}, p.Neighbors(1, nil))
}

func TestPolicy_VerticalTargetImpassable(t *testing.T) {
	cells := ones(8)
	cells[5] = 0
	g := mustLayered(t, cells, 2, 2)
	p, err := neighbors.NewPolicy(g, neighbors.Omnidirectional,
		neighbors.WithLinks(neighbors.NewLinks([]uint32{1}, nil)))
	require.NoError(t, err)

	assert.Equal(t, []uint32{1, 2, 3}, p.Neighbors(0, nil))
}

func TestPolicy_EmptyLinksArePlanar(t *testing.T) {
	g := mustLayered(t, ones(8), 2, 2)
	p, err := neighbors.NewPolicy(g, neighbors.CardinalOnly, neighbors.WithLinks(neighbors.NewLinks(nil, nil)))
	require.NoError(t, err)
	assert.Nil(t, p.Links())
	assert.Equal(t, 4, p.Capacity())
}

func TestLinks_Accessors(t *testing.T) {
	l := neighbors.NewLinks([]uint32{87, 24, 24}, []uint32{100})
	assert.Equal(t, []uint32{24, 87}, l.Up())
	assert.Equal(t, []uint32{100}, l.Down())
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.HasUp(24))
	assert.False(t, l.HasDown(24))

	var none *neighbors.Links
	assert.Zero(t, none.Len())
	assert.False(t, none.HasUp(24))
	assert.Nil(t, none.Up())
}
