package state

// dispatch runs a mutation off the caller's goroutine and reports completion
// on the returned channel. The channel is buffered so callers that only care
// about the live query re-emitting may ignore it; tests await it for
// deterministic ordering.
func dispatch(mutate func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- mutate()
	}()
	return done
}
