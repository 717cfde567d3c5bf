package domain

// GraphicsBackend abstracts the platform graphics stack for testing
type GraphicsBackend interface {
	// Name identifies the backend in logs and reports
	Name() string
	// Open acquires a transient context. Every resource acquired on the way
	// must be registered on rel right after it is acquired, so the caller can
	// release it even when a later step fails.
	Open(rel Releaser) (GraphicsContext, error)
}

// GraphicsContext answers the identification queries of an open context
type GraphicsContext interface {
	Renderer() (string, error)
	Vendor() (string, error)
	// Extensions returns the space-delimited extension list
	Extensions() (string, error)
}

// Releaser collects release functions for resources acquired by a backend
type Releaser interface {
	Defer(name string, release func() error)
}

// Prober produces a GPU identity snapshot
type Prober interface {
	Probe() ProbeResult
}
