// Package catalogtest provides an in-process storefront API for tests.
package catalogtest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

const (
	HealthBody   = `{"success":true,"message":"API is running"}`
	ProductsBody = `{"success":true,"data":[
		{"id":"p1","name":"iPhone 15","image_url":"https://img.example/p1.png","price":99990,"discount":10,"category":"phones","stock_quantity":3,"description":"Smartphone","seller_id":"s1"},
		{"id":"p2","name":"Case","image_url":"https://img.example/p2.png","price":"1500.50","category":"accessories","seller_id":"s9"}
	]}`
	StoriesBody = `{"success":true,"data":[
		{"id":"st1","title":"New arrivals","image_url":"https://img.example/st1.png","link":"https://t.me/shop","seller_id":"s1","created_at":"2024-05-01T10:00:00Z"}
	]}`
	SellersBody = `{"success":true,"data":[
		{"id":"s1","name":"Gadget Store","telegram_url":"https://t.me/gadgets"}
	]}`
)

// Response is a canned reply for one endpoint.
type Response struct {
	Status int
	Body   string
}

// Server serves canned envelopes under /api and records every request.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []*http.Request
}

// NewServer starts a server answering every endpoint with a healthy fixture.
func NewServer() *Server {
	s := &Server{
		responses: map[string]Response{
			"health":   {Status: http.StatusOK, Body: HealthBody},
			"products": {Status: http.StatusOK, Body: ProductsBody},
			"search":   {Status: http.StatusOK, Body: ProductsBody},
			"stories":  {Status: http.StatusOK, Body: StoriesBody},
			"sellers":  {Status: http.StatusOK, Body: SellersBody},
		},
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/{endpoint}", s.serve)
	})
	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the API root to hand to a catalog client.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// Respond replaces the reply for endpoint, e.g. "products".
func (s *Server) Respond(endpoint string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[endpoint] = Response{Status: status, Body: body}
}

// Requests returns the requests received so far, oldest first.
func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	endpoint := chi.URLParam(r, "endpoint")

	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(r.Context()))
	resp, ok := s.responses[endpoint]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}
