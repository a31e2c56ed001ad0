package text

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		line         string
		wantSize     int64
		wantDivisors []int64
		wantErr      error
		wantMessage  string
	}{
		{name: "basic", line: "6 [2,3]", wantSize: 6, wantDivisors: []int64{2, 3}},
		{name: "spaces inside brackets", line: "12 [ 2, 3 , 4 ]", wantSize: 12, wantDivisors: []int64{2, 3, 4}},
		{name: "no space before bracket", line: "12[4]", wantSize: 12, wantDivisors: []int64{4}},
		{name: "empty entries skipped", line: "12 [2,,3,]", wantSize: 12, wantDivisors: []int64{2, 3}},
		{name: "large size", line: "1099511627776 [2]", wantSize: 1 << 40, wantDivisors: []int64{2}},
		{name: "zero size is invalid", line: "0 [2]", wantErr: domain.ErrInvalidPileSpec, wantMessage: "initial size must be positive"},
		{name: "empty brackets", line: "6 []", wantErr: domain.ErrInvalidPileSpec, wantMessage: "divisor set is empty"},
		{name: "duplicate divisor", line: "6 [2,3,2]", wantErr: domain.ErrInvalidPileSpec, wantMessage: "duplicate divisor 2"},
		{name: "negative divisor", line: "6 [2,-3]", wantErr: domain.ErrInvalidPileSpec, wantMessage: "divisors must be positive"},
		{name: "zero divisor", line: "6 [0]", wantErr: domain.ErrInvalidPileSpec, wantMessage: "divisors must be positive"},
		{name: "missing brackets", line: "6 2,3", wantErr: domain.ErrMalformedRecord, wantMessage: "expected 'number [x,y,z,...]'"},
		{name: "negative size", line: "-6 [2]", wantErr: domain.ErrMalformedRecord},
		{name: "non numeric divisor", line: "6 [2,x]", wantErr: domain.ErrMalformedRecord, wantMessage: `invalid divisor "x"`},
		{name: "size overflows int64", line: "99999999999999999999 [2]", wantErr: domain.ErrMalformedRecord, wantMessage: "invalid pile size"},
		{name: "trailing garbage", line: "6 [2,3] extra", wantErr: domain.ErrMalformedRecord},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pile, err := ParseLine(tc.line)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.wantSize, pile.InitialSize())
				assert.Equal(t, tc.wantDivisors, pile.Divisors())
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantMessage != "" {
				assert.ErrorContains(t, err, tc.wantMessage)
			}
		})
	}
}

func TestParseKeepsLineNumbersAndSkipsComments(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"# piles",
		"6 [2,3]",
		"",
		"   ",
		"bad line",
		"12 [2,3,4]",
	}, "\n")

	records, err := Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, "6 [2,3]", records[0].Raw)
	assert.NoError(t, records[0].Err)
	assert.Equal(t, int64(6), records[0].Pile.InitialSize())

	assert.Equal(t, 5, records[1].Line)
	assert.ErrorIs(t, records[1].Err, domain.ErrMalformedRecord)
	assert.True(t, records[1].Pile.IsZero())

	assert.Equal(t, 6, records[2].Line)
	assert.NoError(t, records[2].Err)
}

func TestParseOverlongLineDoesNotStopBatch(t *testing.T) {
	t.Parallel()

	huge := "6 [" + strings.Repeat("2,", 600_000) + "3]"
	input := strings.Join([]string{"6 [2,3]", huge, "12 [2,3,4]"}, "\n") + "\n"

	records, err := Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, 1, records[0].Line)
	assert.NoError(t, records[0].Err)

	assert.Equal(t, 2, records[1].Line)
	assert.ErrorIs(t, records[1].Err, domain.ErrMalformedRecord)
	assert.Contains(t, records[1].Err.Error(), "line exceeds 1048576 bytes")
	assert.True(t, strings.HasPrefix(records[1].Raw, "6 [2,2,"))
	assert.True(t, strings.HasSuffix(records[1].Raw, "..."))
	assert.Less(t, len(records[1].Raw), 100)

	assert.Equal(t, 3, records[2].Line)
	require.NoError(t, records[2].Err)
	assert.Equal(t, int64(12), records[2].Pile.InitialSize())
}

func TestParseOverlongFinalLineWithoutNewline(t *testing.T) {
	t.Parallel()

	input := "6 [2,3]\n" + strings.Repeat("9", maxLineBytes+10)

	records, err := Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NoError(t, records[0].Err)
	assert.Equal(t, 2, records[1].Line)
	assert.ErrorIs(t, records[1].Err, domain.ErrMalformedRecord)
}

func TestParseLineAtLimitIsKept(t *testing.T) {
	t.Parallel()

	prefix := "6 [2,3]"
	line := prefix + strings.Repeat(" ", maxLineBytes-len(prefix))

	records, err := Parse(context.Background(), strings.NewReader(line+"\n12 [2,3,4]"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.NoError(t, records[0].Err)
	assert.Equal(t, "6 [2,3]", records[0].Raw)
	assert.Equal(t, 2, records[1].Line)
	assert.NoError(t, records[1].Err)
}

func TestParseCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parse(ctx, strings.NewReader("6 [2,3]\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestReaderReadPilesFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("6 [2,3]\r\n12 [2,3,4]\r\n"), 0o644))

	records, err := Reader{}.ReadPiles(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []int64{2, 3, 4}, records[1].Pile.Divisors())
}

func TestReaderReadPilesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Reader{}.ReadPiles(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}
