package blocks

import "math/rand"

// Sequencer picks the shape of the next piece.
type Sequencer interface {
	// Next returns a shape in spawn orientation. prev is the previous
	// shape's kind, or NoKind at the start of a game.
	Next(prev Kind) Shape
}

// RandomSequencer draws shapes uniformly at random, never repeating the
// previous one.
type RandomSequencer struct {
	rng *rand.Rand
}

// NewRandomSequencer creates a sequencer seeded for reproducible play.
func NewRandomSequencer(seed int64) *RandomSequencer {
	return &RandomSequencer{rng: rand.New(rand.NewSource(seed))}
}

// Next implements Sequencer. Drawing among the other six kinds has the
// same distribution as resampling until the draw differs, in one step.
func (s *RandomSequencer) Next(prev Kind) Shape {
	if prev == NoKind {
		return NewShape(Kinds[s.rng.Intn(len(Kinds))])
	}
	i := s.rng.Intn(len(Kinds) - 1)
	if Kinds[i] == prev {
		i = len(Kinds) - 1
	}
	return NewShape(Kinds[i])
}

// ScriptedSequencer replays a fixed list of kinds, wrapping at the end.
// It ignores prev, so a script may repeat shapes on purpose.
type ScriptedSequencer struct {
	kinds []Kind
	pos   int
}

// NewScriptedSequencer creates a sequencer that yields kinds in order.
func NewScriptedSequencer(kinds ...Kind) *ScriptedSequencer {
	if len(kinds) == 0 {
		kinds = Kinds[:]
	}
	return &ScriptedSequencer{kinds: kinds}
}

// Next implements Sequencer.
func (s *ScriptedSequencer) Next(Kind) Shape {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return NewShape(k)
}
