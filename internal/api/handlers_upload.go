package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jfaulds/pacereader/internal/parser"
	"github.com/jfaulds/pacereader/internal/session"
)

// handleUpload accepts one PDF, segments it, and opens a fresh reading
// session over the result.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Limit total request size, with headroom for multipart overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		respondError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		respondError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	fileName := sanitizeFilename(header.Filename)

	pages, pageCount, err := parser.ExtractPages(data)
	if err != nil {
		respondError(w, uploadErrorMessage(err), uploadErrorStatus(err))
		return
	}

	doc := s.seg.Segment(pages, fileName)
	doc.Metadata.TotalPages = pageCount

	sess := session.New(doc)
	player := session.NewPlayer(sess, s.clock, s.log)
	s.store.Put(sess, player)

	s.log.Info("document uploaded",
		"session_id", sess.ID,
		"file", fileName,
		"pages", pageCount,
		"words", len(doc.Words),
		"sections", len(doc.Sections),
	)

	respond(w, http.StatusCreated, map[string]any{
		"sessionId": sess.ID,
		"metadata":  doc.Metadata,
		"sections":  doc.Sections,
	})
}

// uploadErrorMessage maps parser errors to the messages shown to the reader.
func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, parser.ErrNotPDF):
		return "file is not a PDF"
	case errors.Is(err, parser.ErrPasswordProtected):
		return "this PDF is password-protected, please upload an unprotected file"
	case errors.Is(err, parser.ErrInvalidPDF):
		return "this PDF appears to be corrupted or invalid"
	default:
		return "failed to process PDF: " + err.Error()
	}
}

func uploadErrorStatus(err error) int {
	switch {
	case errors.Is(err, parser.ErrNotPDF),
		errors.Is(err, parser.ErrPasswordProtected),
		errors.Is(err, parser.ErrInvalidPDF):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
