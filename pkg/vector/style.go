package vector

// StrokeCap is the decoration drawn at an open end of a stroke.
type StrokeCap string

// Stroke caps understood by the host editor.
const (
	StrokeCapNone             StrokeCap = "NONE"
	StrokeCapRound            StrokeCap = "ROUND"
	StrokeCapSquare           StrokeCap = "SQUARE"
	StrokeCapArrowLines       StrokeCap = "ARROW_LINES"
	StrokeCapArrowEquilateral StrokeCap = "ARROW_EQUILATERAL"
)

// OrDefault returns c, or [StrokeCapNone] if c is empty.
func (c StrokeCap) OrDefault() StrokeCap {
	if c == "" {
		return StrokeCapNone
	}
	return c
}

// Valid reports whether c is empty or a known cap.
func (c StrokeCap) Valid() bool {
	switch c {
	case "", StrokeCapNone, StrokeCapRound, StrokeCapSquare, StrokeCapArrowLines, StrokeCapArrowEquilateral:
		return true
	}
	return false
}

// StrokeJoin is the shape drawn where two stroked segments meet.
type StrokeJoin string

// Stroke joins understood by the host editor.
const (
	StrokeJoinMiter StrokeJoin = "MITER"
	StrokeJoinBevel StrokeJoin = "BEVEL"
	StrokeJoinRound StrokeJoin = "ROUND"
)

// OrDefault returns j, or [StrokeJoinMiter] if j is empty.
func (j StrokeJoin) OrDefault() StrokeJoin {
	if j == "" {
		return StrokeJoinMiter
	}
	return j
}

// Valid reports whether j is empty or a known join.
func (j StrokeJoin) Valid() bool {
	switch j {
	case "", StrokeJoinMiter, StrokeJoinBevel, StrokeJoinRound:
		return true
	}
	return false
}

// HandleMirroring controls how the editor couples a vertex's two handles
// while the user drags one of them.
type HandleMirroring string

// Handle mirroring modes.
const (
	HandleMirroringNone           HandleMirroring = "NONE"
	HandleMirroringAngle          HandleMirroring = "ANGLE"
	HandleMirroringAngleAndLength HandleMirroring = "ANGLE_AND_LENGTH"
)

// OrDefault returns m, or [HandleMirroringNone] if m is empty.
func (m HandleMirroring) OrDefault() HandleMirroring {
	if m == "" {
		return HandleMirroringNone
	}
	return m
}

// Valid reports whether m is empty or a known mode.
func (m HandleMirroring) Valid() bool {
	switch m {
	case "", HandleMirroringNone, HandleMirroringAngle, HandleMirroringAngleAndLength:
		return true
	}
	return false
}

// WindingRule decides which points lie inside a region whose loops overlap.
type WindingRule string

// Winding rules.
const (
	WindingNonZero WindingRule = "NONZERO"
	WindingEvenOdd WindingRule = "EVENODD"
)

// OrDefault returns w, or [WindingNonZero] if w is empty.
func (w WindingRule) OrDefault() WindingRule {
	if w == "" {
		return WindingNonZero
	}
	return w
}

// Valid reports whether w is empty or a known rule.
func (w WindingRule) Valid() bool {
	switch w {
	case "", WindingNonZero, WindingEvenOdd:
		return true
	}
	return false
}
