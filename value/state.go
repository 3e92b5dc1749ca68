package value

// Conventional State keys
const (
	KeyTick = "tick" // Int, frames rendered so far
	KeyFPS  = "fps"  // Float, measured frames per second
	KeyExit = "exit" // Bool, set to request shutdown
)

// State is the key/value store shared between the main loop and the code it
// drives. The zero value is an empty State. It is not safe for concurrent
// use.
type State struct {
	root Value
}

func NewState() *State {
	return &State{root: Map(nil)}
}

// Get returns the value stored under key, or None
func (s *State) Get(key string) Value {
	v, _ := s.root.Get(key)
	return v
}

// Set stores v under key
func (s *State) Set(key string, v Value) {
	*s.Entry(key) = v
}

// Entry returns the mutable entry for key, inserting None if it is missing
func (s *State) Entry(key string) *Value {
	if !s.root.IsMap() {
		s.root = Map(nil)
	}
	e, _ := s.root.Entry(key)
	return e
}

// Value returns the whole state as a map Value. The map is shared with s.
func (s *State) Value() Value {
	return s.root
}

// Tick returns the frame counter, or 0 if it has not been set
func (s *State) Tick() int64 {
	i, _ := s.Get(KeyTick).AsInt()
	return i
}

// ShouldExit reports whether the exit flag has been set. A non-boolean exit
// value is ignored.
func (s *State) ShouldExit() bool {
	b, _ := s.Get(KeyExit).AsBool()
	return b
}
