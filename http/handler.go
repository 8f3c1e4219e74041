package http

import (
	"log/slog"
	"math"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sagarc03/drills"
)

const indexMessage = "Hello Drills!"

// DrillRoutes lists the paths served by Router, excluding the metrics path.
var DrillRoutes = []string{"/", "/echo", "/queryViewer", "/greetings", "/sum", "/cipher", "/lotto"}

type Service interface {
	Greet(req drills.GreetingRequest) string
	Sum(req drills.SumRequest) drills.SumResult
	Cipher(req drills.CipherRequest) string
	Lotto(req drills.LottoRequest) drills.LottoResult
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled" yaml:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods" yaml:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers" yaml:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers" yaml:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials" yaml:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age" yaml:"max_age" validate:"min=0"`
}

type HandlerConfig struct {
	CORS CORSConfig
	// Metrics is optional. When set, requests are instrumented and the
	// registry is served at MetricsPath.
	Metrics     *Metrics
	MetricsPath string
}

// Handler provides the HTTP handlers for the drill endpoints.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns an http.Handler with every drill route mounted.
// HEAD is answered by the matching GET handler.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Use(RequestIDMiddleware)
	r.Use(RequestLogger)
	// Metrics sits outside Recoverer so recovered panics are counted as 500s.
	if h.config.Metrics != nil {
		r.Use(h.config.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	r.NotFound(writeDefaultNotFound)
	r.MethodNotAllowed(writeDefaultMethodNotAllowed)

	if h.config.Metrics != nil && h.config.MetricsPath != "" {
		r.Method(http.MethodGet, h.config.MetricsPath, h.config.Metrics.Handler())
	}

	// Keep DrillRoutes in sync with the routes below.
	r.Get("/", h.handleIndex)
	r.Get("/echo", h.handleEcho)
	r.Get("/queryViewer", h.handleQueryViewer)
	r.Get("/greetings", h.handleGreetings)
	r.Get("/sum", h.handleSum)
	r.Get("/cipher", h.handleCipher)
	r.Get("/lotto", h.handleLotto)

	return r
}

// writeJSON answers 200 with v, or 500 if v cannot be encoded.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if err := WriteJSON(w, http.StatusOK, v); err != nil {
		h.fail(w, r, err)
	}
}

// fail records a rejected request and writes the error response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.config.Metrics.RecordRejection(r.URL.Path, err)
	HandleError(w, err)
}

func (h *Handler) handleIndex(w http.ResponseWriter, _ *http.Request) {
	WriteText(w, http.StatusOK, indexMessage)
}

func (h *Handler) handleEcho(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	host := r.Host
	if hostname, _, err := net.SplitHostPort(r.Host); err == nil {
		host = hostname
	}

	body := "Here are some details of your request:" +
		"\nBase URL: " + scheme + "://" + r.Host +
		"\nHost: " + host +
		"\nPath: " + r.URL.Path
	WriteText(w, http.StatusOK, body)
}

func (h *Handler) handleQueryViewer(w http.ResponseWriter, r *http.Request) {
	slog.Info("query received", "query", r.URL.Query(), "request_id", RequestIDFromContext(r.Context()))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleGreetings(w http.ResponseWriter, r *http.Request) {
	req, err := drills.ParseGreetingRequest(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteText(w, http.StatusOK, h.service.Greet(req))
}

func (h *Handler) handleSum(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req, err := drills.ParseSumRequest(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	format, err := drills.ParseResponseFormat(q.Get("format"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	result := h.service.Sum(req)
	if format == drills.FormatJSON {
		if math.IsInf(result.Sum, 0) {
			h.fail(w, r, &drills.ValidationError{Field: "sum", Message: "sum overflows and cannot be encoded as json"})
			return
		}
		h.writeJSON(w, r, result)
		return
	}
	WriteText(w, http.StatusOK, result.String())
}

func (h *Handler) handleCipher(w http.ResponseWriter, r *http.Request) {
	req, err := drills.ParseCipherRequest(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteText(w, http.StatusOK, h.service.Cipher(req))
}

func (h *Handler) handleLotto(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req, err := drills.ParseLottoRequest(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	format, err := drills.ParseResponseFormat(q.Get("format"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	result := h.service.Lotto(req)
	h.config.Metrics.RecordLottoDraw(len(result.Misses))

	if format == drills.FormatJSON {
		h.writeJSON(w, r, result)
		return
	}
	WriteText(w, http.StatusOK, result.Message)
}
