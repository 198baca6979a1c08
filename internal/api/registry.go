package api

import "net/http"

// Registry holds all registered endpoints.
type Registry struct {
	endpoints []Endpoint
}

// NewRegistry creates a new endpoint registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an endpoint to the registry.
func (r *Registry) Register(ep Endpoint) {
	r.endpoints = append(r.endpoints, ep)
}

// RegisterRoutes registers all endpoint HTTP routes with the given mux.
func (r *Registry) RegisterRoutes(mux *http.ServeMux) {
	for _, ep := range r.endpoints {
		method, path, handler := ep.Route()
		mux.HandleFunc(method+" "+path, handler)
	}
}

// Endpoints returns all registered endpoints.
func (r *Registry) Endpoints() []Endpoint {
	return r.endpoints
}
