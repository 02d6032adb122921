package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vasalvit/hilbert"
)

type InstructionTest struct {
	Description string
	Level       int
	Viewport    Viewport
	Kinds       []InstructionType
	XCoords     []float64
	YCoords     []float64
}

var instructionTests = []InstructionTest{
	{
		"level 0 draws nothing",
		0,
		DefaultViewport(),
		[]InstructionType{},
		nil,
		nil,
	},
	{
		"level 1 on paper axes",
		1,
		DefaultViewport(),
		[]InstructionType{
			MoveInstruction, LineInstruction, PaintInstruction,
			MoveInstruction, LineInstruction, PaintInstruction,
			MoveInstruction, LineInstruction, PaintInstruction,
		},
		[]float64{10, 10, 0, 10, 290, 0, 290, 290, 0},
		[]float64{290, 10, 0, 10, 10, 0, 10, 290, 0},
	},
	{
		"level 1 on image axes",
		1,
		Viewport{Width: 100, Height: 100, Padding: 0},
		[]InstructionType{
			MoveInstruction, LineInstruction, PaintInstruction,
			MoveInstruction, LineInstruction, PaintInstruction,
			MoveInstruction, LineInstruction, PaintInstruction,
		},
		[]float64{0, 0, 0, 0, 100, 0, 100, 100, 0},
		[]float64{0, 100, 0, 100, 100, 0, 100, 0, 0},
	},
}

func TestInstructions(t *testing.T) {
	for _, test := range instructionTests {
		c, err := hilbert.NewCurve(test.Level)
		require.NoError(t, err)

		strux := Instructions(c, test.Viewport)
		if len(strux) != len(test.Kinds) {
			t.Fatalf("expected %d instructions for test %s, but received %d", len(test.Kinds), test.Description, len(strux))
		}

		for i, kind := range test.Kinds {
			if strux[i].Kind != kind {
				t.Fatalf("expected instruction %d for test %s to be %d, but was %d", i, test.Description, kind, strux[i].Kind)
			}
		}

		for i, x := range test.XCoords {
			if strux[i].M == nil {
				continue
			}
			require.InDelta(t, x, strux[i].M[0], 1e-9, "x %d of %s", i, test.Description)
		}

		for i, y := range test.YCoords {
			if strux[i].M == nil {
				continue
			}
			require.InDelta(t, y, strux[i].M[1], 1e-9, "y %d of %s", i, test.Description)
		}
	}
}

func TestInstructionsPaint(t *testing.T) {
	c, err := hilbert.NewCurve(2)
	require.NoError(t, err)

	strux := Instructions(c, DefaultViewport())
	require.Len(t, strux, 3*c.Len())

	segment := 0
	for _, di := range strux {
		if di.Kind != PaintInstruction {
			require.Nil(t, di.Stroke)
			continue
		}
		require.NotNil(t, di.Stroke)
		require.NotNil(t, di.StrokeWidth)
		require.Equal(t, SegmentColor(segment, c.Len()), *di.Stroke)
		require.Equal(t, 12.5, *di.StrokeWidth)
		segment++
	}
	require.Equal(t, c.Len(), segment)
}
