package server

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"

	"web_copy_generator/generator"
	"web_copy_generator/render"
)

//go:embed web/index.html
var embeddedStatic embed.FS

type Server struct {
	agent    *generator.Agent
	logger   *logrus.Logger
	staticFS http.Handler
}

func New(agent *generator.Agent, logger *logrus.Logger) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	sub, err := fs.Sub(embeddedStatic, "web")
	if err != nil {
		return nil, err
	}

	return &Server{
		agent:    agent,
		logger:   logger,
		staticFS: http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/page-types", s.handlePageTypes)
	mux.HandleFunc("/api/schema", s.handleSchema)
	mux.Handle("/", s.staticFS)
	return s.logMiddleware(mux)
}

// --- Handlers ---

type generateReq struct {
	PageType    string `json:"page_type"`
	Description string `json:"description"`
	WordCount   *int   `json:"word_count"`
}

type generateResp struct {
	PageType  string `json:"page_type"`
	Title     string `json:"title,omitempty"`
	Text      string `json:"text"`
	HTML      string `json:"html"`
	Truncated bool   `json:"truncated"`
	WordCount int    `json:"word_count"`
	WordLimit int    `json:"word_limit"`
}

type pageTypesResp struct {
	PageTypes        []generator.PageType `json:"page_types"`
	DefaultWordCount int                  `json:"default_word_count"`
	MinWordCount     int                  `json:"min_word_count"`
	MaxWordCount     int                  `json:"max_word_count"`
}

type errorResp struct {
	Error string `json:"error"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pt, err := generator.ParsePageType(req.PageType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	words := generator.DefaultWordCount
	if req.WordCount != nil {
		words = *req.WordCount
	}

	res, err := s.agent.Generate(r.Context(), generator.GenerationRequest{
		PageType:    pt,
		Description: req.Description,
		WordCount:   words,
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	html, err := render.ToHTML(res.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		PageType:  pt.String(),
		Title:     render.Title(res.Text),
		Text:      res.Text,
		HTML:      html,
		Truncated: res.Truncated,
		WordCount: res.WordCount,
		WordLimit: res.WordLimit,
	})
}

func (s *Server) handlePageTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	writeJSON(w, http.StatusOK, pageTypesResp{
		PageTypes:        generator.AllPageTypes(),
		DefaultWordCount: generator.DefaultWordCount,
		MinWordCount:     generator.MinWordCount,
		MaxWordCount:     generator.MaxWordCount,
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	writeJSON(w, http.StatusOK, RequestSchema())
}

// RequestSchema describes the body accepted by POST /api/generate.
func RequestSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true, RequiredFromJSONSchemaTags: true}
	return r.Reflect(&generator.GenerationRequest{})
}

// --- Helpers ---

func statusFor(err error) int {
	var (
		empty   *generator.EmptyDescriptionError
		badType *generator.InvalidPageTypeError
		badWC   *generator.InvalidWordCountError
		svc     *generator.GenerationServiceError
	)
	switch {
	case errors.As(err, &empty), errors.As(err, &badType), errors.As(err, &badWC):
		return http.StatusBadRequest
	case errors.As(err, &svc):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResp{Error: err.Error()})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start),
		}).Info("http request")
	})
}
