package public

import "github.com/healthybites-next/internal/provider"

// Handler serves the shopper-facing API.
type Handler struct {
	*provider.Container
}

func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
