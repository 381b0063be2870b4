package control

// Frame is an open container.
type Frame struct {
	// Offset is the stream position of the container's control block and
	// Count the number of fields read directly inside it so far.
	Offset uint64
	Count  uint64
}

type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

func (s *Stack) Pop() (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("no frame on stack")
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Count records a field read directly inside the innermost container.
func (s *Stack) Count() {
	if top := s.Top(); top != nil {
		top.Count++
	}
}
