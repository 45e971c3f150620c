package machine

// Machine is one independent linear system: a target vector plus the
// buttons that act on it. Immutable after New; all accessors return
// copies so callers cannot alias internal state.
type Machine struct {
	target  []int   // one value per light/counter
	buttons [][]int // buttons[j] = sorted-or-not indices touched by button j
}

// New constructs a Machine from a target vector and a button bank.
// The inputs are deep-copied to guarantee immutability.
//
// Validation (fail-fast, per the structural error class):
//   - len(target) ≥ 1, every target value ≥ 0 (ErrEmptyTarget, ErrNegativeTarget);
//   - every index of every button lies in [0, len(target)) (ErrIndexOutOfRange).
//
// A button's effect is a set of indices: duplicates in a button's list
// collapse to a single occurrence (first position wins), so one press
// touches each listed target exactly once in both solving modes.
// A button with no indices is valid (it can never help, but it is not an
// error), as is a machine with zero buttons.
// Complexity: O(len(target) + Σ button sizes).
func New(target []int, buttons [][]int) (*Machine, error) {
	if len(target) == 0 {
		return nil, ErrEmptyTarget
	}
	for _, v := range target {
		if v < 0 {
			return nil, ErrNegativeTarget
		}
	}
	n := len(target)
	for _, b := range buttons {
		for _, idx := range b {
			if idx < 0 || idx >= n {
				return nil, ErrIndexOutOfRange
			}
		}
	}

	m := &Machine{
		target:  make([]int, n),
		buttons: make([][]int, len(buttons)),
	}
	copy(m.target, target)
	seen := make([]bool, n)
	for j, b := range buttons {
		dedup := make([]int, 0, len(b))
		for _, idx := range b {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			dedup = append(dedup, idx)
		}
		for _, idx := range dedup {
			seen[idx] = false // reset for the next button
		}
		m.buttons[j] = dedup
	}
	return m, nil
}

// TargetLen reports the number of constrained positions (lights/counters).
func (m *Machine) TargetLen() int { return len(m.target) }

// ButtonCount reports the number of buttons in the bank.
func (m *Machine) ButtonCount() int { return len(m.buttons) }

// Target returns the target value at position i. Panics on out-of-range i,
// as index discipline is the caller's invariant inside the solvers.
func (m *Machine) Target(i int) int { return m.target[i] }

// Targets returns a fresh copy of the full target vector.
func (m *Machine) Targets() []int {
	out := make([]int, len(m.target))
	copy(out, m.target)
	return out
}

// Button returns a fresh copy of the index list of button j.
func (m *Machine) Button(j int) []int {
	out := make([]int, len(m.buttons[j]))
	copy(out, m.buttons[j])
	return out
}

// Affects reports whether button j touches position i.
// Complexity: O(size of button j); button lists are short in practice.
func (m *Machine) Affects(j, i int) bool {
	for _, idx := range m.buttons[j] {
		if idx == i {
			return true
		}
	}
	return false
}

// ZeroTarget reports whether every target value is zero. Both solving
// modes resolve a zero target to weight 0 without touching the matrix.
func (m *Machine) ZeroTarget() bool {
	for _, v := range m.target {
		if v != 0 {
			return false
		}
	}
	return true
}

// ReplayToggle applies a toggle-mode press vector (presses[j] ∈ {0,1},
// odd counts toggle) and returns the resulting light vector. Used by
// round-trip verification in tests and by callers auditing a solution.
// Returns ErrPressLength when len(presses) != ButtonCount.
func (m *Machine) ReplayToggle(presses []int) ([]int, error) {
	if len(presses) != len(m.buttons) {
		return nil, ErrPressLength
	}
	lights := make([]int, len(m.target))
	for j, p := range presses {
		if p&1 == 0 {
			continue
		}
		for _, idx := range m.buttons[j] {
			lights[idx] ^= 1
		}
	}
	return lights, nil
}

// ReplayAdd applies a counter-mode press vector (presses[j] ≥ 0 presses
// of button j, each adding 1 to every touched counter) and returns the
// resulting counter vector.
// Returns ErrPressLength when len(presses) != ButtonCount.
func (m *Machine) ReplayAdd(presses []int64) ([]int64, error) {
	if len(presses) != len(m.buttons) {
		return nil, ErrPressLength
	}
	counters := make([]int64, len(m.target))
	for j, p := range presses {
		if p == 0 {
			continue
		}
		for _, idx := range m.buttons[j] {
			counters[idx] += p
		}
	}
	return counters, nil
}
