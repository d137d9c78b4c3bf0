package resource

// Mode tells whether the form creates a new record or edits Selected.
type Mode int

const (
	Creating Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "creating"
}

// Identifiable records expose the server-assigned id.
type Identifiable interface {
	GetID() int64
}

// Validator is implemented by drafts that must be checked before Create.
type Validator interface {
	Validate() error
}

// State is the screen state owned by a Synchronizer.
type State[R Identifiable, D any] struct {
	Items    []R
	Form     D
	Mode     Mode
	Selected *R
	Loading  bool
}

func (s State[R, D]) clone() State[R, D] {
	c := s
	c.Items = append([]R(nil), s.Items...)
	if s.Selected != nil {
		sel := *s.Selected
		c.Selected = &sel
	}
	return c
}

// Find returns the item with the given id.
func (s State[R, D]) Find(id int64) (R, bool) {
	for _, it := range s.Items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero R
	return zero, false
}

func (st *State[R, D]) reset() {
	var form D
	st.Form = form
	st.Mode = Creating
	st.Selected = nil
}
