package bench

import "sync"

// launchHandle is a Handle whose body is handed to a launch function exactly
// once. done is closed when the body returns.
type launchHandle struct {
	body   func()
	launch func(run func())
	once   sync.Once
	done   chan struct{}
}

func newLaunchHandle(body func(), launch func(run func())) *launchHandle {
	return &launchHandle{
		body:   body,
		launch: launch,
		done:   make(chan struct{}),
	}
}

func (h *launchHandle) Start() {
	h.once.Do(func() {
		h.launch(func() {
			defer close(h.done)
			h.body()
		})
	})
}

func (h *launchHandle) Join() {
	h.Start()
	<-h.done
}
