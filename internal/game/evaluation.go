package game

// Outcome classifies an answer for feedback.
type Outcome string

const (
	OutcomeCorrect        Outcome = "CORRECT"
	OutcomeWrongDirection Outcome = "WRONG_DIRECTION"
	OutcomeTooThin        Outcome = "TOO_THIN"
	OutcomeTooFull        Outcome = "TOO_FULL"
)

// Classify compares quantized EIs. Direction is settled first and only a
// straight target ignores it.
func Classify(targetEI float64, targetDir Direction, answerEI float64, answerDir Direction) Outcome {
	dirOK := targetEI == 0 || answerDir == targetDir

	switch {
	case answerEI == targetEI && dirOK:
		return OutcomeCorrect
	case !dirOK:
		return OutcomeWrongDirection
	case answerEI > targetEI:
		return OutcomeTooThin
	default:
		return OutcomeTooFull
	}
}

// Verdict is the result of one submitted answer.
type Verdict struct {
	Outcome         Outcome   `json:"outcome"`
	Correct         bool      `json:"correct"`
	TargetEI        float64   `json:"target_ei"`
	TargetDirection Direction `json:"target_direction"`
	AnswerEI        float64   `json:"answer_ei"`
	AnswerDirection Direction `json:"answer_direction"`
	ScoreDelta      int       `json:"score_delta"`
	Transition
}
