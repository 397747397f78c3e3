package battle

// Input is the set of logical buttons pressed during one frame.
type Input uint8

const (
	InputLeft Input = 1 << iota
	InputRight
	InputPageStart
	InputPageEnd
	InputConfirm
	InputCancel
)

const InputNone Input = 0

func (in Input) Has(b Input) bool { return in&b != 0 }

func (in Input) String() string {
	if in == InputNone {
		return "none"
	}
	names := []struct {
		b Input
		n string
	}{
		{InputLeft, "left"}, {InputRight, "right"}, {InputPageStart, "page_start"},
		{InputPageEnd, "page_end"}, {InputConfirm, "confirm"}, {InputCancel, "cancel"},
	}
	out := ""
	for _, n := range names {
		if in.Has(n.b) {
			if out != "" {
				out += "+"
			}
			out += n.n
		}
	}
	return out
}
