package board

// numbers is the clockwise segment order starting from the top of the board.
var numbers = [20]int{20, 1, 18, 4, 13, 6, 10, 15, 2, 17, 3, 19, 7, 16, 8, 11, 14, 9, 12, 5}

// segmentIndex maps a segment number to its position in numbers.
var segmentIndex = func() map[int]int {
	index := make(map[int]int, len(numbers))
	for i, n := range numbers {
		index[n] = i
	}
	return index
}()

// Numbers returns the segment numbers in clockwise order from the top.
func Numbers() []int {
	out := make([]int, len(numbers))
	copy(out, numbers[:])
	return out
}

// OnBoard reports whether number is one of the 20 segments.
func OnBoard(number int) bool {
	_, ok := segmentIndex[number]
	return ok
}

// AdjacentNumbers returns the counter-clockwise and clockwise neighbours of
// number. ok is false when number is not a board segment.
func AdjacentNumbers(number int) (left, right int, ok bool) {
	i, found := segmentIndex[number]
	if !found {
		return 0, 0, false
	}
	n := len(numbers)
	return numbers[(i-1+n)%n], numbers[(i+1)%n], true
}

// AllTargets lists every aimable target: the two bullseye rings followed by
// the single, double and treble of each segment in board order.
func AllTargets() []Target {
	targets := make([]Target, 0, 2+3*len(numbers))
	targets = append(targets, Bull, OuterBull)
	for _, n := range numbers {
		targets = append(targets, Single(n), Double(n), Triple(n))
	}
	return targets
}
