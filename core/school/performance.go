package school

// PerformanceLevel is one of the four ordinal achievement bands derived
// from a numeric score.
type PerformanceLevel string

const (
	LevelExceeding   PerformanceLevel = "Exceeding Expectations"
	LevelMeeting     PerformanceLevel = "Meeting Expectations"
	LevelApproaching PerformanceLevel = "Approaching Expectations"
	LevelBelow       PerformanceLevel = "Below Expectations"
)

func (l PerformanceLevel) String() string { return string(l) }

// LevelForScore maps a 0-100 score onto its performance level. The bands
// are contiguous and inclusive on their lower edge: >=80 Exceeding,
// 60-79 Meeting, 40-59 Approaching, <40 Below. This is the only place
// the mapping lives; a level is never set independently of its score.
func LevelForScore(score int) PerformanceLevel {
	switch {
	case score >= 80:
		return LevelExceeding
	case score >= 60:
		return LevelMeeting
	case score >= 40:
		return LevelApproaching
	default:
		return LevelBelow
	}
}
