package checkout

import "github.com/Vojb/busted-dart/internal/darts/board"

// preferredLeaves are the doubles a setup single tries to leave, best first.
var preferredLeaves = []int{32, 40, 24, 16, 36, 20, 8, 4, 2}

// NextTarget returns the dart to aim at for score: the first dart of the
// recommended route, or a setup shot when the table has no route. Scores
// too large to finish aim at treble 20; odd scores up to 40 aim at a single
// that leaves a favourite double.
func NextTarget(score int) board.Target {
	if route, ok := Recommended(score); ok {
		return route[0]
	}
	if score > 40 {
		return board.Triple(20)
	}
	for _, leave := range preferredLeaves {
		single := score - leave
		if board.OnBoard(single) {
			return board.Single(single)
		}
	}
	return board.Single(1)
}
