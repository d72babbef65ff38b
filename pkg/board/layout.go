package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/hexboard/pkg/observability"
)

var (
	// ErrInvalidMode is returned by [Board.Layout] when a mode is not
	// valid for the attribute it orders (for example ModeStandard for
	// terrain, which only the number sequence defines).
	ErrInvalidMode = errors.New("invalid layout mode")

	// ErrTrialLimit is returned by [Board.Layout] when MaxTrials
	// assignment passes were rejected. The reference behavior retries
	// forever; a positive cap turns an unsatisfiable validator set into
	// this error instead of a hang.
	ErrTrialLimit = errors.New("no valid layout within trial limit")
)

// Mode selects how an assignment pass orders its attribute sequence.
type Mode int

const (
	// ModeShuffle applies a uniformly random permutation of the
	// canonical multiset.
	ModeShuffle Mode = iota

	// ModeBeginner uses the fixed beginner reference sequence.
	ModeBeginner

	// ModeStandard uses the published variable-setup number sequence.
	// Only numbers define a standard sequence.
	ModeStandard
)

// String returns the mode's name ("shuffle", "beginner", "standard").
func (m Mode) String() string {
	switch m {
	case ModeShuffle:
		return "shuffle"
	case ModeBeginner:
		return "beginner"
	case ModeStandard:
		return "standard"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a name accepted on the command line into a [Mode].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "shuffle", "":
		return ModeShuffle, nil
	case "beginner":
		return ModeBeginner, nil
	case "standard":
		return ModeStandard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Validator is a pure predicate over a fully assigned board. Validators
// read derived orderings and tile attributes and must not mutate either;
// returning false rejects the trial.
type Validator func(*Board) bool

// LayoutOptions configures a [Board.Layout] run.
type LayoutOptions struct {
	// Terrain orders the terrain tiles over the columns. Valid modes:
	// ModeBeginner, ModeShuffle.
	Terrain Mode

	// Numbers orders the production numbers over the spiral. Valid
	// modes: ModeBeginner, ModeStandard, ModeShuffle.
	Numbers Mode

	// Ports orders the port kinds clockwise from 12 o'clock. Valid
	// modes: ModeBeginner, ModeShuffle.
	Ports Mode

	// Validators are checked in order after every assignment pass; the
	// pass is accepted when all return true. An empty list accepts the
	// first pass.
	Validators []Validator

	// MaxTrials caps the number of assignment passes. Zero means
	// unbounded, reproducing the reference behavior: an unsatisfiable
	// validator set then loops forever.
	MaxTrials int

	// Rand is the randomness source for shuffled modes. Nil uses the
	// process-wide source; inject a seeded *rand.Rand for determinism.
	Rand *rand.Rand
}

// Layout assigns terrain, numbers, and ports onto the topology, retrying
// until every validator accepts or the trial cap is hit. On return with a
// nil error the board holds the accepted assignment; [Board.TrialCount]
// reports how many passes it took.
func (b *Board) Layout(opts LayoutOptions) error {
	if err := b.checkModes(opts); err != nil {
		return err
	}

	// Trials are only counted when there is something to retry for.
	if len(opts.Validators) > 0 {
		b.trials = 1
	} else {
		b.trials = 0
	}

	for {
		b.assignTerrain(opts.Terrain, opts.Rand)
		b.assignNumbers(opts.Numbers, opts.Rand)
		b.assignPorts(opts.Ports, opts.Rand)

		rejectedBy := -1
		for i, v := range opts.Validators {
			if !v(b) {
				rejectedBy = i
				break
			}
		}
		observability.Generation().OnTrialComplete(b.trials, rejectedBy < 0, rejectedBy)
		if rejectedBy < 0 {
			observability.Generation().OnLayoutComplete(b.trials, nil)
			return nil
		}
		if opts.MaxTrials > 0 && b.trials >= opts.MaxTrials {
			err := fmt.Errorf("%w: %d trials", ErrTrialLimit, b.trials)
			observability.Generation().OnLayoutComplete(b.trials, err)
			return err
		}
		b.trials++
	}
}

func (b *Board) checkModes(opts LayoutOptions) error {
	if opts.Terrain == ModeStandard {
		return fmt.Errorf("%w: standard terrain ordering does not exist", ErrInvalidMode)
	}
	if opts.Ports == ModeStandard {
		return fmt.Errorf("%w: standard port ordering does not exist", ErrInvalidMode)
	}
	return nil
}

// assignTerrain writes the terrain sequence onto the column ordering.
func (b *Board) assignTerrain(mode Mode, r *rand.Rand) {
	seq := slices.Clone(b.terrainSequence())
	if mode == ModeShuffle {
		shuffle(r, len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	}
	for i, t := range b.columns {
		if i >= len(seq) {
			break
		}
		t.Data.Terrain = seq[i]
	}
}

// assignNumbers walks the spiral handing out numbers; deserts always get
// 0 and consume nothing from the sequence.
func (b *Board) assignNumbers(mode Mode, r *rand.Rand) {
	var seq []int
	if mode == ModeBeginner {
		seq = slices.Clone(b.beginnerNumbers())
	} else {
		seq = slices.Clone(b.standardNumbers())
	}
	if mode == ModeShuffle {
		shuffle(r, len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	}
	next := 0
	for _, t := range b.spiral {
		if t.Data.Terrain == Desert {
			t.Data.SetNumber(0)
			continue
		}
		if next < len(seq) {
			t.Data.SetNumber(seq[next])
			next++
		} else {
			t.Data.SetNumber(0)
		}
	}
}

// assignPorts writes the port kinds onto the selected port tiles in
// clockwise order.
func (b *Board) assignPorts(mode Mode, r *rand.Rand) {
	seq := slices.Clone(b.portSequence())
	if mode == ModeShuffle {
		shuffle(r, len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	}
	for i, t := range b.ports {
		if i >= len(seq) {
			break
		}
		t.Data.Terrain = seq[i]
	}
}

func (b *Board) terrainSequence() []Terrain {
	if b.variant == VariantLarge {
		return largeBeginnerTerrain
	}
	return standardBeginnerTerrain
}

func (b *Board) beginnerNumbers() []int {
	if b.variant == VariantLarge {
		return largeNumbers
	}
	return standardBeginnerNumbers
}

func (b *Board) standardNumbers() []int {
	if b.variant == VariantLarge {
		return largeNumbers
	}
	return standardVariableNumbers
}

func (b *Board) portSequence() []Terrain {
	if b.variant == VariantLarge {
		return largeBeginnerPorts
	}
	return standardBeginnerPorts
}

// shuffle dispatches to the injected source or the process-wide one.
func shuffle(r *rand.Rand, n int, swap func(i, j int)) {
	if r != nil {
		r.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}
