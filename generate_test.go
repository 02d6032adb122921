package hilbert

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/require"
)

func countForward(instrs []Instruction) int {
	n := 0
	for _, i := range instrs {
		if i == Forward {
			n++
		}
	}
	return n
}

func TestGenerateLevelZero(t *testing.T) {
	is := is.New(t)

	instrs, err := Generate(0, false)
	is.NoErr(err)
	is.Equal(len(instrs), 0)

	points := Integrate(Interpret(instrs))
	is.Equal(points, []Point{{0, 0}})
	is.Equal(len(Segments(points)), 0)
}

func TestGenerateLevelOne(t *testing.T) {
	instrs, err := Generate(1, false)
	require.NoError(t, err)
	require.Equal(t, "-F+F+F-", FormatInstructions(instrs))

	headings := Interpret(instrs)
	require.Equal(t, []Heading{Up, Right, Down}, headings)

	points := Integrate(headings)
	require.Equal(t, []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, points)
	require.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(1, 1)}, Bounds(points))
	require.Len(t, Segments(points), 3)
}

func TestGenerateLevelTwo(t *testing.T) {
	instrs, err := Generate(2, false)
	require.NoError(t, err)
	require.Equal(t, "-+F-F-F+F+-F+F+F-F-F+F+F-+F+F-F-F+-", FormatInstructions(instrs))
}

func TestGenerateNegativeLevel(t *testing.T) {
	instrs, err := Generate(-1, false)
	require.ErrorIs(t, err, ErrNegativeLevel)
	require.Nil(t, instrs)
}

func TestGenerateSizes(t *testing.T) {
	for level := 0; level <= 6; level++ {
		for _, mirrored := range []bool{false, true} {
			instrs, err := Generate(level, mirrored)
			require.NoError(t, err)

			cells := 1 << (2 * level)
			require.Equal(t, cells-1, countForward(instrs), "level %d", level)
			require.Equal(t, cells-1, ForwardCount(level), "level %d", level)
			require.Equal(t, 7*(cells-1)/3, len(instrs), "level %d", level)

			points := Integrate(Interpret(instrs))
			require.Len(t, points, cells, "level %d", level)
			require.Len(t, Segments(points), cells-1, "level %d", level)
		}
	}
}

func TestCurveIsSelfAvoidingAndFillsSquare(t *testing.T) {
	for level := 1; level <= 6; level++ {
		instrs, err := Generate(level, false)
		require.NoError(t, err)
		points := Integrate(Interpret(instrs))

		seen := make(map[Point]bool, len(points))
		for _, p := range points {
			require.False(t, seen[p], "level %d revisits %v", level, p)
			seen[p] = true
		}
		for _, s := range Segments(points) {
			require.True(t, s.Adjacent(), "level %d segment %v", level, s)
		}

		side := 1<<level - 1
		require.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(side, side)}, Bounds(points))
		require.Equal(t, Pt(side, 0), points[len(points)-1])
	}
}

func TestMirroredReflectsAcrossXAxis(t *testing.T) {
	for level := 0; level <= 5; level++ {
		plain, err := Generate(level, false)
		require.NoError(t, err)
		mirrored, err := Generate(level, true)
		require.NoError(t, err)

		pp := Integrate(Interpret(plain))
		mp := Integrate(Interpret(mirrored))
		require.Len(t, mp, len(pp))
		for i := range pp {
			require.Equal(t, Pt(pp[i].X, -pp[i].Y), mp[i], "level %d point %d", level, i)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(4, false)
	require.NoError(t, err)
	b, err := Generate(4, false)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, Interpret(a), Interpret(b))
}
