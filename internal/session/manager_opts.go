package session

type ManagerOpt func(*Manager)

// WithSeed makes every world use the same random seed. Zero seeds from the
// clock.
func WithSeed(seed int64) ManagerOpt {
	return func(m *Manager) {
		m.seed = seed
	}
}

// WithRecorder reports session starts and ends.
func WithRecorder(r Recorder) ManagerOpt {
	return func(m *Manager) {
		m.recorder = r
	}
}
