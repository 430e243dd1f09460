package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aitechdigest/digest/internal/config"
	"github.com/aitechdigest/digest/internal/content"
	"github.com/aitechdigest/digest/internal/feed"
	"github.com/aitechdigest/digest/internal/outline"
	"github.com/aitechdigest/digest/internal/resources"
	"github.com/aitechdigest/digest/internal/search"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the HTTP presentation layer over the digest corpus. It holds no
// derived state: every request re-reads the content store, so published
// edits show up without a restart.
type Server struct {
	store       *content.Store
	catalogPath string
	site        feed.Site
	pages       map[string]*template.Template
	mux         *http.ServeMux
}

// New creates a new Server from the site configuration.
func New(cfg *config.Config) (*Server, error) {
	funcMap := template.FuncMap{
		"markdown":          renderMarkdown,
		"formatDate":        content.FormatDate,
		"categoryLabel":     content.CategoryLabel,
		"resourceTypeLabel": content.ResourceTypeLabel,
		"significanceLabel": content.SignificanceLabel,
		"catalogLabel":      resources.CategoryLabel,
	}

	// Parse base template first
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	// For each page template, clone the base and parse the page into the clone.
	// This gives each page its own {{define "content"}} and {{define "title"}}.
	pageNames := []string{"index.html", "digest.html", "resources.html", "about.html"}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}
		_, err = clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = clone
	}

	s := &Server{
		store:       content.NewStore(cfg.Content.PostsDir),
		catalogPath: cfg.Content.ResourcesPath,
		site: feed.Site{
			BaseURL:     cfg.Site.BaseURL,
			Title:       cfg.Site.Title,
			Description: cfg.Site.Description,
			Language:    cfg.Site.Language,
		},
		pages: pages,
		mux:   http.NewServeMux(),
	}
	s.routes()
	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	// Static files
	staticSub, _ := fs.Sub(staticFS, "static")
	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Routes
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/digest/", s.handleDigest)
	s.mux.HandleFunc("/resources", s.handleResources)
	s.mux.HandleFunc("/about", s.handleAbout)
	s.mux.HandleFunc("/feed.xml", s.handleFeed)
	s.mux.HandleFunc("/sitemap.xml", s.handleSitemap)
	s.mux.HandleFunc("/api/search", s.handleSearch)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.render(w, "index.html", map[string]any{
		"Site":  s.site,
		"Posts": s.store.LoadAll(),
	})
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/digest/")
	if slug == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	post := s.store.GetBySlug(slug)
	if post == nil {
		http.NotFound(w, r)
		return
	}
	prev, next := s.store.Adjacent(slug)

	s.render(w, "digest.html", map[string]any{
		"Site":    s.site,
		"Post":    post,
		"Outline": outline.Extract(post.Content),
		"Prev":    prev,
		"Next":    next,
	})
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	s.render(w, "resources.html", map[string]any{
		"Site":  s.site,
		"Index": resources.Load(s.catalogPath),
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, "about.html", map[string]any{
		"Site": s.site,
	})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	out, err := feed.RSS(s.site, s.store.LoadAll())
	if err != nil {
		log.Printf("Error rendering feed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(out)
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	out, err := feed.Sitemap(s.site, s.store.LoadAll(), time.Now())
	if err != nil {
		log.Printf("Error rendering sitemap: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(out)
}

type searchResponse struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results []search.Record `json:"results"`
}

// handleSearch answers the debounced search box. The index is rebuilt per
// query; the corpus is small enough that this stays cheap.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	index := search.BuildIndex(s.store.LoadAll())
	results := search.Query(index, q)
	if results == nil {
		results = []search.Record{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(searchResponse{Query: q, Count: len(results), Results: results}); err != nil {
		log.Printf("Error encoding search response: %v", err)
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := s.pages[name]
	if !ok {
		log.Printf("Template %s not found", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("Error rendering template %s: %v", name, err)
	}
}

// Serve starts the HTTP server on the given port.
func Serve(cfg *config.Config, port int) error {
	srv, err := New(cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	log.Printf("Server listening on http://%s", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
