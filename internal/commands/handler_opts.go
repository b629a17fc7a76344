package commands

type HandlerOpt func(*Handler)

// WithPublisher journals every executed command to the publisher.
func WithPublisher(p Publisher) HandlerOpt {
	return func(h *Handler) {
		h.publisher = p
	}
}

// WithRecorder counts every executed command.
func WithRecorder(r Recorder) HandlerOpt {
	return func(h *Handler) {
		h.recorder = r
	}
}
