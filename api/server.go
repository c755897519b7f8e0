// Package api provides HTTP API capabilities for the bwax extractor.
// This is a capability module that can be enabled via the CLI or used
// programmatically.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/angeldimitrov/bwax/export"
	"github.com/angeldimitrov/bwax/extractor"
	"github.com/angeldimitrov/bwax/extractor/bwa"
	"github.com/angeldimitrov/bwax/extractor/common"
)

// Config holds the API server configuration
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config Config
	mux    *http.ServeMux
}

// New creates a new API server with the given configuration
func New(cfg Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/extract", s.handleExtract)
	s.mux.HandleFunc("/export", s.handleExport)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server so it can be used
// with custom http.Server configurations and in tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// ExtractOptions holds the options for extraction
type ExtractOptions struct {
	LinesOnly    bool
	DocumentOnly bool
	TextOnly     bool
	Format       string
}

func (s *Server) parseExtractOptions(r *http.Request) ExtractOptions {
	return ExtractOptions{
		LinesOnly:    r.FormValue("lines_only") == "true" || r.URL.Query().Get("lines_only") == "true",
		DocumentOnly: r.FormValue("document_only") == "true" || r.URL.Query().Get("document_only") == "true",
		TextOnly:     r.FormValue("text_only") == "true" || r.URL.Query().Get("text_only") == "true",
		Format:       coalesce(r.FormValue("format"), r.URL.Query().Get("format")),
	}
}

// handleExtract handles BWA PDF extraction requests
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	fileReader, fileName, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	opts := s.parseExtractOptions(r)

	if opts.TextOnly {
		s.handleTextOnlyExtract(w, fileReader, fileName)
		return
	}

	doc, err := extractor.ProcessReader(fileReader, fileName)
	if err != nil {
		s.writeExtractionError(w, fileName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(extractor.CreateFinalOutput(doc, opts.LinesOnly, opts.DocumentOnly))
}

// handleExport extracts a BWA PDF and streams the lines back as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	fileReader, fileName, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	format, err := export.ParseFormat(s.parseExtractOptions(r).Format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := extractor.ProcessReader(fileReader, fileName)
	if err != nil {
		s.writeExtractionError(w, fileName, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bwa_export.csv"`)
	if err := export.WriteCSV(w, doc, format); err != nil {
		log.Printf("%sError writing CSV: %v", s.config.LogPrefix, err)
	}
}

// readUpload parses the multipart form and returns the uploaded file
// buffered in memory. On failure it writes the error response itself.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*bytes.Reader, string, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, "", false
	}

	// 32MB max memory
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("%sError parsing multipart form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not parse multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		log.Printf("%sError getting file from form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not get uploaded file: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Printf("%sError reading file bytes: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not read file: "+err.Error(), http.StatusInternalServerError)
		return nil, "", false
	}

	return bytes.NewReader(fileBytes), handler.Filename, true
}

// writeExtractionError reports an extraction failure explicitly; a
// document that could not be parsed is never returned as an empty
// success.
func (s *Server) writeExtractionError(w http.ResponseWriter, fileName string, err error) {
	log.Printf("%sExtraction failed for %s: %v", s.config.LogPrefix, fileName, err)

	status := http.StatusBadRequest
	if errors.Is(err, bwa.ErrNoDataLine) || errors.Is(err, bwa.ErrNoMonthColumns) || errors.Is(err, bwa.ErrNoPages) {
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":    err.Error(),
		"filename": fileName,
	})
}

// handleTextOnlyExtract returns the raw text layer for troubleshooting
// extraction failures.
func (s *Server) handleTextOnlyExtract(w http.ResponseWriter, reader *bytes.Reader, filename string) {
	pages, err := common.ExtractPagesFromPDFReader(reader)
	if err != nil {
		log.Printf("%sError extracting text: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not extract text from file: "+err.Error(), http.StatusBadRequest)
		return
	}

	var rows []string
	for _, page := range pages {
		rows = append(rows, page...)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"filename": filename,
		"text":     strings.Join(rows, "\n"),
	})
}

// coalesce returns the first non-empty string
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
