package handler

import (
	"miles_watch/internal/worker"
)

type Handler struct {
	scanner *worker.FareScanner
}

func New(scanner *worker.FareScanner) *Handler {
	return &Handler{
		scanner: scanner,
	}
}
