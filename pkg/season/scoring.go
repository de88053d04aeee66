package season

const (
	MinScoringPosition = 1
	MaxScoringPosition = 10
)

var pointScale = [MaxScoringPosition + 1]int{0, 25, 18, 15, 12, 10, 8, 6, 4, 2, 1}

// PointsFor returns the points awarded for a finishing position, 0 outside 1..10.
func PointsFor(position int) int {
	if position < MinScoringPosition || position > MaxScoringPosition {
		return 0
	}
	return pointScale[position]
}

// PointScale returns a copy of the scoring table keyed by position.
func PointScale() map[int]int {
	scale := make(map[int]int, MaxScoringPosition)
	for p := MinScoringPosition; p <= MaxScoringPosition; p++ {
		scale[p] = pointScale[p]
	}
	return scale
}
