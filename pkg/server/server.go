package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/anrid/malaria-stats/pkg/dashboard"
	"github.com/anrid/malaria-stats/pkg/stats"
)

const maxUploadBytes = 32 << 20

// Server exposes the dashboard views over HTTP. The world overview is
// computed once, when the server is created.
type Server struct {
	db       *stats.Database
	overview *dashboard.Result
	logger   *slog.Logger
	metrics  *Metrics
}

// New constructs a server and computes the world overview from the
// bundled sample.
func New(db *stats.Database, logger *slog.Logger, metrics *Metrics) (*Server, error) {
	start := time.Now()
	overview, err := dashboard.SampleOverview(db)
	if err != nil {
		return nil, fmt.Errorf("compute overview: %w", err)
	}
	logger.Info("overview computed",
		"countries", overview.Aggregate.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	metrics.ObserveRender(dashboard.OverviewName, "sample", time.Since(start))

	return &Server{
		db:       db,
		overview: overview,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// NewHTTPServer builds an HTTP server with sane defaults for this project.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Router mounts every endpoint.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)

	r.Get("/healthz", s.HandleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/overview", s.HandleOverview)
		r.Get("/views", s.HandleListViews)
		r.Get("/views/{view}/sample", s.HandleSample)
		r.Post("/views/{view}/upload", s.HandleUpload)
	})
	return r
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, map[string]string{"status": "ok"})
}

// HandleOverview handles GET /api/overview.
func (s *Server) HandleOverview(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.overview)
}

type subjectInfo struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
}

type viewInfo struct {
	Name    string            `json:"name"`
	Heading string            `json:"heading"`
	Subject subjectInfo       `json:"subject"`
	Filter  *dashboard.Filter `json:"filter,omitempty"`
}

// HandleListViews handles GET /api/views. The upload slots and region
// selectors of a front-end are built from this list.
func (s *Server) HandleListViews(w http.ResponseWriter, r *http.Request) {
	out := make([]viewInfo, 0, len(dashboard.Views))
	for _, name := range dashboard.Names() {
		v := dashboard.Views[name]
		out = append(out, viewInfo{
			Name:    v.Name,
			Heading: v.Heading,
			Subject: subjectInfo{
				Name:    v.Subject.Name,
				Title:   v.Subject.Title,
				Columns: v.Subject.Columns(),
			},
			Filter: v.Filter,
		})
	}
	s.respond(w, r, out)
}

// HandleSample handles GET /api/views/{view}/sample?region=.
func (s *Server) HandleSample(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "view")
	region := r.URL.Query().Get("region")

	s.serveView(w, r, name, "sample", func(v dashboard.View) (*dashboard.Result, error) {
		return dashboard.RunSample(s.db, v, region)
	})
}

// HandleUpload handles POST /api/views/{view}/upload?region=. The file is
// either the multipart field "file" or the raw request body, in which case
// ?filename= picks the reader.
func (s *Server) HandleUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "view")
	region := r.URL.Query().Get("region")

	s.serveView(w, r, name, "upload", func(v dashboard.View) (*dashboard.Result, error) {
		f, err := readUpload(w, r)
		if err != nil {
			return nil, err
		}
		t, err := stats.ReadTable(f)
		if err != nil {
			return nil, err
		}
		return v.Run(t, s.db.Reference, region)
	})
}

func (s *Server) serveView(w http.ResponseWriter, r *http.Request, name, source string, run func(dashboard.View) (*dashboard.Result, error)) {
	ctx := r.Context()
	reqID := requestID(ctx)
	start := time.Now()

	v, err := dashboard.Lookup(name)
	if err != nil {
		writeError(w, err)
		return
	}

	fail := func(err error) {
		_, code := classify(err)
		s.metrics.IncrementError(v.Name, code)
		s.logger.ErrorContext(ctx, "view failed",
			"request_id", reqID,
			"view", v.Name,
			"source", source,
			"error", err,
		)
		writeError(w, err)
	}

	res, err := run(v)
	if err != nil {
		fail(err)
		return
	}
	if err := writeJSON(w, http.StatusOK, res); err != nil {
		fail(err)
		return
	}

	s.metrics.ObserveRender(v.Name, source, time.Since(start))
	s.logger.InfoContext(ctx, "view computed",
		"request_id", reqID,
		"view", v.Name,
		"source", source,
		"region", res.Region,
		"groups", res.Aggregate.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// respond writes v as a 200 response, or a 500 if v cannot be encoded.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any) {
	if err := writeJSON(w, http.StatusOK, v); err != nil {
		s.logger.ErrorContext(r.Context(), "response not encoded",
			"request_id", requestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, err)
	}
}

func readUpload(w http.ResponseWriter, r *http.Request) (*stats.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		return &stats.File{Name: header.Filename, Content: data}, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", errBadRequest)
	}
	name := r.URL.Query().Get("filename")
	if name == "" {
		name = "upload.csv"
	}
	return &stats.File{Name: name, Content: data}, nil
}
