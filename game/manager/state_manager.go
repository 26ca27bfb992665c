package manager

// RunState is the lifecycle of one game
type RunState int

const (
	Running RunState = iota
	Over
)

func (r RunState) String() string {
	if r == Over {
		return "over"
	}
	return "running"
}

// StateManager tracks the run state and the per-game counters. Over is
// terminal: nothing moves the state back to Running.
type StateManager struct {
	state RunState
	cause CollisionType
	ticks int
	score int
}

func NewStateManager() *StateManager {
	return &StateManager{
		state: Running,
		cause: NoCollision,
	}
}

func (sm *StateManager) State() RunState {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == Running
}

// Cause returns the collision that ended the game, NoCollision while running.
func (sm *StateManager) Cause() CollisionType {
	return sm.cause
}

// End moves the game to Over. It reports true only for the first call.
func (sm *StateManager) End(cause CollisionType) bool {
	if sm.state == Over {
		return false
	}
	sm.state = Over
	sm.cause = cause
	return true
}

func (sm *StateManager) RecordTick() {
	sm.ticks++
}

func (sm *StateManager) RecordMeal() {
	sm.score++
}

func (sm *StateManager) Ticks() int {
	return sm.ticks
}

// Score is the number of meals eaten.
func (sm *StateManager) Score() int {
	return sm.score
}
