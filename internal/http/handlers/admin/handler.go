package admin

import "github.com/healthybites-next/internal/provider"

// Handler serves the admin API behind the shared-secret gate.
type Handler struct {
	*provider.Container
}

func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
