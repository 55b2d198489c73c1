package playbyplay

import "strconv"

// Event type code ranges used by the report format.
const (
	twoPointMin   = 100
	threePointMin = 200
	freeThrowMin  = 300
	freeThrowMax  = 400
)

// Non-scoring event type codes.
const (
	EventTypeRebound      = 400
	EventTypeFoul         = 410
	EventTypeTurnover     = 420
	EventTypeSubstitution = 430
	EventTypeTimeout      = 440
	EventTypePeriodStart  = 900
	EventTypePeriodEnd    = 901
	EventTypeBuzzerbeater = 902
	EventTypeGameEnd      = 903
)

type ShotType int

const (
	ShotTypeUnknown     ShotType = 0
	ShotTypeJumpShot    ShotType = 101
	ShotTypeLayup       ShotType = 102
	ShotTypeDunk        ShotType = 103
	ShotTypeTipIn       ShotType = 104
	ShotTypeHook        ShotType = 105
	ShotTypeFadeaway    ShotType = 106
	ShotTypeAlleyOop    ShotType = 107
	ShotTypeThreePoint  ShotType = 201
	ShotTypeCornerThree ShotType = 202
	ShotTypeDeepThree   ShotType = 203
	ShotTypeHalfCourt   ShotType = 204
)

var shotTypeLabels = map[ShotType]string{
	ShotTypeJumpShot:    "JUMP_SHOT",
	ShotTypeLayup:       "LAYUP",
	ShotTypeDunk:        "DUNK",
	ShotTypeTipIn:       "TIP_IN",
	ShotTypeHook:        "HOOK",
	ShotTypeFadeaway:    "FADEAWAY",
	ShotTypeAlleyOop:    "ALLEY_OOP",
	ShotTypeThreePoint:  "THREE_POINTER",
	ShotTypeCornerThree: "CORNER_THREE",
	ShotTypeDeepThree:   "DEEP_THREE",
	ShotTypeHalfCourt:   "HALF_COURT",
}

// IsThreePoint reports whether the shot type is a three-point attempt.
func (t ShotType) IsThreePoint() bool {
	return t >= threePointMin && t < freeThrowMin
}

func (t ShotType) String() string {
	return strconv.Itoa(int(t))
}

// Label returns the symbolic name of a shot type, empty when unset or unknown.
func (t ShotType) Label() string {
	if t == ShotTypeUnknown {
		return ""
	}
	if label, ok := shotTypeLabels[t]; ok {
		return label
	}
	if t.IsThreePoint() {
		return "THREE_POINTER"
	}
	return "TWO_POINTER"
}

type ShotResult int

const (
	ShotResultMissed        ShotResult = 0
	ShotResultMade          ShotResult = 1
	ShotResultBlocked       ShotResult = 2
	ShotResultMadeAndFouled ShotResult = 3
)

func (r ShotResult) Made() bool {
	return r == ShotResultMade || r == ShotResultMadeAndFouled
}

func (r ShotResult) String() string {
	return strconv.Itoa(int(r))
}

type FreeThrowType int

const (
	FreeThrowOneOfOne     FreeThrowType = 301
	FreeThrowOneOfTwo     FreeThrowType = 302
	FreeThrowTwoOfTwo     FreeThrowType = 303
	FreeThrowOneOfThree   FreeThrowType = 304
	FreeThrowTwoOfThree   FreeThrowType = 305
	FreeThrowThreeOfThree FreeThrowType = 306
	FreeThrowTechnical    FreeThrowType = 307
)

var freeThrowLabels = map[FreeThrowType]string{
	FreeThrowOneOfOne:     "ONE_OF_ONE",
	FreeThrowOneOfTwo:     "ONE_OF_TWO",
	FreeThrowTwoOfTwo:     "TWO_OF_TWO",
	FreeThrowOneOfThree:   "ONE_OF_THREE",
	FreeThrowTwoOfThree:   "TWO_OF_THREE",
	FreeThrowThreeOfThree: "THREE_OF_THREE",
	FreeThrowTechnical:    "TECHNICAL",
}

func (t FreeThrowType) String() string {
	return strconv.Itoa(int(t))
}

func (t FreeThrowType) Label() string {
	if label, ok := freeThrowLabels[t]; ok {
		return label
	}
	return "FREE_THROW"
}
