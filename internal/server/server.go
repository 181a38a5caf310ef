// Package server implements the HTTP conversion surface.
//
// The server exposes a single conversion endpoint backed by the same
// rendering backend abstraction as the CLI and TUI:
//
//	POST /convert   multipart upload (field "file", optional "dpi") → PDF
//	GET  /healthz   liveness probe
//
// Uploads are written to a per-request temporary directory that is removed
// when the request completes; nothing outlives a single request.
package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/svg2pdf/pkg/convert"
	"github.com/matzehuels/svg2pdf/pkg/errors"
	"github.com/matzehuels/svg2pdf/pkg/observability"
	"github.com/matzehuels/svg2pdf/pkg/render"
)

// maxUploadBytes bounds the multipart form size (20 MiB).
const maxUploadBytes = 20 << 20

// Server converts uploaded SVG files to PDF over HTTP.
type Server struct {
	backend render.Renderer
	logger  *log.Logger
	dpi     float64 // default dpi when the form omits one
}

// New creates a Server rendering through backend. defaultDPI is used when
// a request does not carry a dpi form value.
func New(backend render.Renderer, logger *log.Logger, defaultDPI float64) *Server {
	if defaultDPI <= 0 {
		defaultDPI = render.DefaultDPI
	}
	return &Server{backend: backend, logger: logger, dpi: defaultDPI}
}

// Router builds the chi router for the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Post("/convert", s.handleConvert)
	return r
}

// observe reports request events to the logger and observability hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Debugf("%s %s %d (%s)", r.Method, r.URL.Path, ww.Status(), duration.Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleConvert accepts a multipart SVG upload and streams back the PDF.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "file too large or invalid form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	dpi := s.dpi
	if v := r.FormValue("dpi"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "dpi must be a positive number", http.StatusBadRequest)
			return
		}
		dpi = parsed
	}

	name := filepath.Base(header.Filename)
	if !isSVGName(name) {
		uploadErr := errors.New(errors.ErrCodeUnsupported, "only SVG uploads are supported")
		http.Error(w, errors.UserMessage(uploadErr), statusForError(uploadErr))
		return
	}

	reqID := uuid.New().String()
	s.logger.Infof("[%s] converting %s (dpi %g)", reqID, name, dpi)

	tmpDir, err := os.MkdirTemp("", "svg2pdf-*")
	if err != nil {
		s.internalError(w, reqID, errors.Wrap(errors.ErrCodeInternal, err, "create temp dir"))
		return
	}
	defer os.RemoveAll(tmpDir)

	inputPath := filepath.Join(tmpDir, name)
	if err := writeUpload(inputPath, file); err != nil {
		s.internalError(w, reqID, errors.Wrap(errors.ErrCodeInternal, err, "save upload"))
		return
	}

	outputPath := filepath.Join(tmpDir, convert.PDFPath(name))
	result := convert.One(r.Context(), s.backend, inputPath, outputPath, dpi)
	if !result.OK() {
		s.logger.Warnf("[%s] conversion failed: %v", reqID, result.Err)
		http.Error(w, errors.UserMessage(result.Err), statusForError(result.Err))
		return
	}

	pdf, err := os.Open(outputPath)
	if err != nil {
		s.internalError(w, reqID, errors.Wrap(errors.ErrCodeInternal, err, "open result"))
		return
	}
	defer pdf.Close()

	s.logger.Infof("[%s] streaming %s", reqID, filepath.Base(outputPath))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(outputPath)))
	io.Copy(w, pdf)
}

// isSVGName reports whether name has a .svg extension, case-insensitively.
func isSVGName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".svg")
}

// writeUpload copies the uploaded file to path.
func writeUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}

// internalError logs the structured cause and reports a generic failure
// to the client without leaking internal details.
func (s *Server) internalError(w http.ResponseWriter, reqID string, err error) {
	s.logger.Errorf("[%s] %v", reqID, err)
	http.Error(w, "internal server error", statusForError(err))
}

// statusForError maps conversion error codes to HTTP status codes.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInputNotFound, errors.ErrCodeInvalidDPI, errors.ErrCodeInvalidInput,
		errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeMalformedSVG:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
