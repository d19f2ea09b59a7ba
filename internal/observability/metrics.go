package observability

import "sync"

// Metrics provides basic in-memory counters for engine operations.
type Metrics struct {
	mu          sync.Mutex
	opCount     map[string]int64
	noticeCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		opCount:     make(map[string]int64),
		noticeCount: make(map[string]int64),
	}
}

// RecordOperation increments the counter for a completed operation.
func (m *Metrics) RecordOperation(op string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opCount[op]++
}

// RecordNotice increments the counter for a non-fatal notice.
func (m *Metrics) RecordNotice(op, code string) {
	if m == nil {
		return
	}
	key := op + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.noticeCount[key]++
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() (ops map[string]int64, notices map[string]int64) {
	ops = make(map[string]int64)
	notices = make(map[string]int64)
	if m == nil {
		return ops, notices
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.opCount {
		ops[k] = v
	}
	for k, v := range m.noticeCount {
		notices[k] = v
	}
	return ops, notices
}
