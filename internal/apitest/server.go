// Package apitest provides an in-memory stand-in for the recipe backend so
// the client can be exercised end to end in tests.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Call is one request observed by the fake backend.
type Call struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

type ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type recipe struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}

// Server is a fake backend. Token, when non-empty, is the only bearer token
// accepted; everything else gets 401.
type Server struct {
	*httptest.Server

	Token string

	mu          sync.Mutex
	nextID      int64
	ingredients []ingredient
	recipes     []recipe
	calls       []Call
	failures    map[string]int
}

// New starts a fake backend and closes it when the test ends.
func New(t testing.TB, token string) *Server {
	t.Helper()
	s := &Server{Token: token, nextID: 1, failures: map[string]int{}}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record, s.auth, s.inject)

	r.Get("/ingredients", s.listIngredients)
	r.Post("/ingredients", s.createIngredient)
	r.Delete("/ingredients/{id}", s.deleteIngredient)

	r.Get("/recipes", s.listRecipes)
	r.Post("/recipes", s.createRecipe)
	r.Put("/recipes/{id}", s.updateRecipe)
	r.Delete("/recipes/{id}", s.deleteRecipe)

	r.Post("/logout", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

// Fail makes every subsequent "METHOD /path" request answer with code.
// The path is matched literally, e.g. "DELETE /ingredients/1".
func (s *Server) Fail(method, path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = code
}

// SeedIngredient stores an ingredient and returns its id.
func (s *Server) SeedIngredient(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.ingredients = append(s.ingredients, ingredient{ID: id, Name: name})
	return id
}

// SeedRecipe stores a recipe and returns its id.
func (s *Server) SeedRecipe(name, instructions string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.recipes = append(s.recipes, recipe{ID: id, Name: name, Instructions: instructions})
	return id
}

// Calls returns every request seen so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// Reset forgets recorded calls.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// RecipeInstructions returns the stored instructions for id.
func (s *Server) RecipeInstructions(id int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r.Instructions, true
		}
	}
	return "", false
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))
		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Body:   string(body),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Token != "" && r.Header.Get("Authorization") != "Bearer "+s.Token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		code, ok := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()
		if ok {
			http.Error(w, http.StatusText(code), code)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listIngredients(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	items := append([]ingredient{}, s.ingredients...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) createIngredient(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	s.SeedIngredient(in.Name)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) deleteIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.ingredients {
		if it.ID == id {
			s.ingredients = append(s.ingredients[:i], s.ingredients[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (s *Server) listRecipes(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(r.URL.Query().Get("name"))
	s.mu.Lock()
	items := make([]recipe, 0, len(s.recipes))
	for _, rc := range s.recipes {
		if name == "" || strings.Contains(strings.ToLower(rc.Name), name) {
			items = append(items, rc)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) createRecipe(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name         string `json:"name"`
		Instructions string `json:"instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" || in.Instructions == "" {
		http.Error(w, "name and instructions required", http.StatusBadRequest)
		return
	}
	s.SeedRecipe(in.Name, in.Instructions)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) updateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in struct {
		Instructions string `json:"instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			s.recipes[i].Instructions = in.Instructions
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (s *Server) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rc := range s.recipes {
		if rc.ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
