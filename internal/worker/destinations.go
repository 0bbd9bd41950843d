package worker

import "github.com/samber/lo"

// AddDestination registers a destination for the next cycles. Returns false
// when the code is already tracked.
func (w *FareScanner) AddDestination(code string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if lo.Contains(w.destinations, code) {
		return false
	}

	w.destinations = append(w.destinations, code)

	return true
}

// RemoveDestination drops a destination, keeping the scan order of the rest.
// Returns false when the code is not tracked.
func (w *FareScanner) RemoveDestination(code string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, existing := range w.destinations {
		if existing == code {
			w.destinations = append(w.destinations[:i], w.destinations[i+1:]...)
			return true
		}
	}

	return false
}

// Destinations returns a copy of the tracked destination codes.
func (w *FareScanner) Destinations() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.destinations) == 0 {
		return nil
	}

	result := make([]string, len(w.destinations))
	copy(result, w.destinations)

	return result
}
