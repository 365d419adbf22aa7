package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// Command is the single player request applied during one tick.
type Command int

const (
	NoOp Command = iota
	Left
	Right
	SoftDrop
	UpNudge
	RotateCCW
	RotateCW
	DebugCycleShape
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case NoOp:
		return "NoOp"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case SoftDrop:
		return "SoftDrop"
	case UpNudge:
		return "UpNudge"
	case RotateCCW:
		return "RotateCCW"
	case RotateCW:
		return "RotateCW"
	case DebugCycleShape:
		return "DebugCycleShape"
	default:
		return "Unknown"
	}
}

// CommandFor maps a platform action to a game command.
// Actions with no gameplay meaning become NoOp.
func CommandFor(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return Left
	case core.ActionRight:
		return Right
	case core.ActionDown:
		return SoftDrop
	case core.ActionUp:
		return UpNudge
	case core.ActionRotateCCW:
		return RotateCCW
	case core.ActionRotateCW:
		return RotateCW
	case core.ActionCycle:
		return DebugCycleShape
	default:
		return NoOp
	}
}
