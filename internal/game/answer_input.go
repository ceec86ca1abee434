package game

import "errors"

var errMissingAnswer = errors.New("ei or shooter_offset required")

// AnswerInput is an answer as sent by a client. Either EI (with direction for
// nonzero values) or a shooter-view pointer offset must be present. Offsets
// are always treated as raw input.
type AnswerInput struct {
	EI            *float64  `json:"ei"`
	Direction     Direction `json:"direction"`
	Raw           bool      `json:"raw"`
	ShooterOffset *float64  `json:"shooter_offset"`
}

// ToAnswer converts the input into an engine answer.
func (in AnswerInput) ToAnswer() (Answer, error) {
	switch {
	case in.ShooterOffset != nil:
		ei, dir := EIFromShooterOffset(*in.ShooterOffset)
		return Answer{EI: ei, Direction: dir, Raw: true}, nil
	case in.EI != nil:
		return Answer{EI: *in.EI, Direction: in.Direction, Raw: in.Raw}, nil
	}
	return Answer{}, errMissingAnswer
}
