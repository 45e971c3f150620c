package machine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpress/machine"
)

const exampleLine = "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}"

func TestParseLine_Example(t *testing.T) {
	p, err := machine.ParseLine(exampleLine)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 1, 0}, p.Lights.Targets())
	require.Equal(t, []int{3, 5, 4, 7}, p.Counters.Targets())
	require.Equal(t, 6, p.Lights.ButtonCount())
	require.Equal(t, 6, p.Counters.ButtonCount())

	wantButtons := [][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}}
	for j, want := range wantButtons {
		require.Equal(t, want, p.Lights.Button(j), "button %d", j)
		require.Equal(t, want, p.Counters.Button(j), "button %d", j)
	}
}

func TestParseLine_SingleLightSingleButton(t *testing.T) {
	p, err := machine.ParseLine("[#] (0) {1}")
	require.NoError(t, err)
	require.Equal(t, []int{1}, p.Lights.Targets())
	require.Equal(t, []int{1}, p.Counters.Targets())
	require.Equal(t, []int{0}, p.Lights.Button(0))
}

func TestParseLine_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"missing diagram", "(0) {1}", machine.ErrBadLine},
		{"unclosed diagram", "[## (0) {1}", machine.ErrBadLine},
		{"empty diagram", "[] (0) {1}", machine.ErrBadLine},
		{"bad diagram rune", "[#x] (0) {1,1}", machine.ErrBadLine},
		{"no buttons", "[#] {1}", machine.ErrBadLine},
		{"empty button group", "[#] () {1}", machine.ErrBadLine},
		{"missing joltage", "[#] (0)", machine.ErrBadLine},
		{"trailing junk", "[#] (0) {1} extra", machine.ErrBadLine},
		{"non-numeric index", "[#] (a) {1}", machine.ErrBadLine},
		{"joltage length mismatch", "[##] (0) {1}", machine.ErrLengthMismatch},
		{"button index out of range", "[#] (1) {1}", machine.ErrIndexOutOfRange},
		{"negative joltage", "[#] (0) {-1}", machine.ErrNegativeTarget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := machine.ParseLine(tc.line)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParse_MultiLine(t *testing.T) {
	input := "\n" + exampleLine + "\n\n[#] (0) {1}\n"
	pairs, err := machine.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	require.Equal(t, 4, pairs[0].Lights.TargetLen())
	require.Equal(t, 1, pairs[1].Lights.TargetLen())
}

func TestParse_ReportsLineNumber(t *testing.T) {
	input := exampleLine + "\nnot a machine\n"
	_, err := machine.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, machine.ErrBadLine)
	require.Contains(t, err.Error(), "line 2")
}
