package pick

import "time"

// Verdict is the tri-state scoring outcome of a pick. Unscored means the
// game is not final yet; it is a normal result, not an error.
type Verdict int

const (
	VerdictUnscored Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

func (v Verdict) Scored() bool {
	return v == VerdictCorrect || v == VerdictIncorrect
}

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	default:
		return "unscored"
	}
}

// Bool renders the verdict in its stored form: nil while unscored.
func (v Verdict) Bool() *bool {
	if !v.Scored() {
		return nil
	}
	correct := v == VerdictCorrect
	return &correct
}

// VerdictFromBool is the inverse of Bool.
func VerdictFromBool(value *bool) Verdict {
	switch {
	case value == nil:
		return VerdictUnscored
	case *value:
		return VerdictCorrect
	default:
		return VerdictIncorrect
	}
}

// Pick is one user's selection for one matchup. Exactly one pick per
// (user, matchup) is authoritative; resubmission before lock overwrites.
type Pick struct {
	ID         int64
	UserID     int64
	MatchupID  int64
	WeekID     int64
	PickedTeam string
	Verdict    Verdict
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
