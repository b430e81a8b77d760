package checkers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialEncodeDecode(t *testing.T) {
	b := NewInitialBoard()
	fen := b.Encode(Black)
	require.Equal(t, "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/r1r1r1r1/1r1r1r1r/r1r1r1r1 b", fen)

	decoded, toMove, err := DecodePosition(fen)
	require.NoError(t, err)
	require.Equal(t, Black, toMove)
	require.Equal(t, *b, *decoded)

	dotted := strings.ReplaceAll(initialBoardString, "\n", "/") + " b"
	fromDots, _, err := DecodePosition(dotted)
	require.NoError(t, err)
	require.Equal(t, *b, *fromDots)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8/8/8/8/8 b",
		"8/8/8/8/8/8/8/8 x",
		"b7/8/8/8/8/8/8/8 b", // light square
		"9/8/8/8/8/8/8/8 b",
		"7k/8/8/8/8/8/8/8 b",
		"7/8/8/8/8/8/8/8 b",
	} {
		_, _, err := DecodePosition(fen)
		require.ErrorIs(t, err, ErrInvalidFEN, "fen %q", fen)
	}
}

func TestHashTracksPositionAndSide(t *testing.T) {
	b := NewInitialBoard()
	require.Equal(t, b.Hash(Black), b.Clone().Hash(Black))
	require.NotEqual(t, b.Hash(Black), b.Hash(Red))

	g := NewGame()
	seen := map[uint64]string{b.Hash(Black): g.Encode()}
	for ply := 0; ply < 12 && g.Status() == InProgress; ply++ {
		mv := g.LegalMoves().Flatten()[0]
		_, err := g.SubmitMove(mv.From, mv.To)
		require.NoError(t, err)
		nb := g.Board()
		h := nb.Hash(g.ToMove())
		if prev, ok := seen[h]; ok {
			require.Equal(t, prev, g.Encode(), "hash collision at ply %d", ply)
		}
		seen[h] = g.Encode()
	}
}

func TestHashKeysAreDistinctPerPieceAndSquare(t *testing.T) {
	initZobrist()
	keys := map[uint64]bool{zobristRed: true}
	for sq := 0; sq < NumSquares; sq++ {
		for _, pc := range []Piece{BlackMan, BlackKing, RedMan, RedKing} {
			k := pieceHashKey(pc, sq)
			if !playable(sq/Cols, sq%Cols) {
				require.Zero(t, k)
				continue
			}
			require.NotZero(t, k)
			require.False(t, keys[k], "duplicate key for %d on %d", pc, sq)
			keys[k] = true
		}
	}
	require.Len(t, keys, 4*NumSquares/2+1)
	require.Zero(t, pieceHashKey(Empty, 1))
}
