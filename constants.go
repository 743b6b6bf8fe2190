package main

type Mode int

const (
	ModePlaceRed Mode = iota
	ModePlaceBlue
	ModeDraw
	ModeErase
)

func (m Mode) String() string {
	switch m {
	case ModePlaceRed:
		return "RED"
	case ModePlaceBlue:
		return "BLUE"
	case ModeDraw:
		return "DRAW"
	case ModeErase:
		return "ERASE"
	default:
		return "UNKNOWN"
	}
}

func (m Mode) placing() bool {
	return m == ModePlaceRed || m == ModePlaceBlue
}

func (m Mode) annotating() bool {
	return m == ModeDraw || m == ModeErase
}

type Team int

const (
	TeamRed Team = iota
	TeamBlue
	numTeams
)

func (t Team) String() string {
	switch t {
	case TeamRed:
		return "red"
	case TeamBlue:
		return "blue"
	default:
		return "unknown"
	}
}

type StrokeKind int

const (
	StrokePaint StrokeKind = iota
	StrokeErase
)

type CursorKind int

const (
	CursorDefault CursorKind = iota
	CursorCrosshair
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmQuit
)

const (
	markerSize   = 40.0
	eraseFactor  = 3.0
	minBrushSize = 1
	maxBrushSize = 50
	toolbarRows  = 1
	statusRows   = 1
)
