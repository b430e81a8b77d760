package checkers

// IsGameOver checks, in order: a side with no pieces loses; a player to move
// with no capture and no simple move loses; otherwise play continues.
func IsGameOver(b *Board, toMove Player) (bool, Player) {
	black, red := b.Count(Black), b.Count(Red)
	if black == 0 {
		return true, Red
	}
	if red == 0 {
		return true, Black
	}
	if b.LegalMovesForPlayer(toMove).Empty() {
		return true, Opponent(toMove)
	}
	return false, NoPlayer
}
