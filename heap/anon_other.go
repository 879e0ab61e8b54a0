//go:build !linux && !darwin && !freebsd

package heap

// Anon falls back to a Go slice where anonymous mappings are unavailable.
type Anon struct {
	Mem
}

// NewAnon reserves limit bytes.
func NewAnon(limit int) (*Anon, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	return &Anon{Mem: Mem{data: make([]byte, 0, limit), limit: limit}}, nil
}
