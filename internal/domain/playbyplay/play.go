package playbyplay

// PlayKind tags the variant carried by a Play.
type PlayKind int

const (
	PlayKindOther PlayKind = iota
	PlayKindShot
	PlayKindFreeThrow
)

func (k PlayKind) String() string {
	switch k {
	case PlayKindShot:
		return "shot"
	case PlayKindFreeThrow:
		return "free_throw"
	default:
		return "other"
	}
}

// Point is a pixel coordinate on the rendered court image.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ShotPlay struct {
	Type     ShotType
	Result   ShotResult
	Position *Point
}

type FreeThrowPlay struct {
	Type   FreeThrowType
	Result ShotResult
}

// Play is a normalized team event. Kind selects which payload is meaningful.
type Play struct {
	Kind      PlayKind
	Team      int
	GameClock int
	Shot      ShotPlay
	FreeThrow FreeThrowPlay
}

func (p Play) Side() int {
	return p.Team
}

func (p Play) Clock() int {
	return p.GameClock
}

// Scored reports whether the play put points on the board.
func (p Play) Scored() bool {
	switch p.Kind {
	case PlayKindShot:
		return p.Shot.Result.Made()
	case PlayKindFreeThrow:
		return p.FreeThrow.Result == ShotResultMade
	default:
		return false
	}
}

// Points returns the value of a scoring play, zero otherwise.
func (p Play) Points() int {
	if !p.Scored() {
		return 0
	}
	switch p.Kind {
	case PlayKindShot:
		if p.Shot.Type.IsThreePoint() {
			return 3
		}
		return 2
	case PlayKindFreeThrow:
		return 1
	default:
		return 0
	}
}
