package heap

// Mem is a Region backed by a Go byte slice whose capacity is the limit.
type Mem struct {
	data   []byte
	limit  int
	closed bool
}

// NewMem reserves limit bytes. A limit outside (0, format.MaxHeapSize] is
// clamped to DefaultLimit.
func NewMem(limit int) *Mem {
	if checkLimit(limit) != nil {
		limit = DefaultLimit
	}
	return &Mem{
		data:  make([]byte, 0, limit),
		limit: limit,
	}
}

func (m *Mem) Bytes() []byte { return m.data[:len(m.data):len(m.data)] }

func (m *Mem) Len() int { return len(m.data) }

// Limit returns the reservation size.
func (m *Mem) Limit() int { return m.limit }

func (m *Mem) Grow(n int) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}
	old := len(m.data)
	end, err := nextEnd(old, n, m.limit)
	if err != nil {
		return 0, err
	}
	m.data = m.data[:end]
	return old, nil
}

func (m *Mem) FD() int { return -1 }

func (m *Mem) Close() error {
	m.closed = true
	m.data = m.data[:0:0]
	return nil
}
