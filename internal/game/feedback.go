package game

import (
	"strconv"
	"strings"
)

// Message is the feedback line shown after an answer.
func (v Verdict) Message() string {
	var b strings.Builder
	if v.Correct {
		b.WriteString("Correct! EI ")
		b.WriteString(shotLabel(v.AnswerEI, v.AnswerDirection))
		b.WriteString(".")
		switch {
		case v.LevelUp:
			b.WriteString(" Level Up! Entering Level ")
			b.WriteString(strconv.Itoa(v.NextLevel))
			b.WriteString(".")
		case v.RackClear:
			b.WriteString(" Rack Clear! Max Level achieved!")
		}
		return b.String()
	}

	b.WriteString("Miss! Target was EI ")
	b.WriteString(shotLabel(v.TargetEI, v.TargetDirection))
	b.WriteString(". ")
	switch v.Outcome {
	case OutcomeWrongDirection:
		b.WriteString("Wrong cut direction. Needed ")
		b.WriteString(v.TargetDirection.String())
		b.WriteString(".")
	case OutcomeTooThin:
		b.WriteString("Too thin.")
	default:
		b.WriteString("Too full.")
	}
	return b.String()
}

func shotLabel(ei float64, dir Direction) string {
	s := strconv.FormatFloat(ei, 'f', -1, 64)
	if ei != 0 && dir != DirectionNone {
		s += " " + dir.String()
	}
	return s
}
