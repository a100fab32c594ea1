// Package handler provides HTTP handlers for the API.
package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"file-processor/internal/domain"
	apperrors "file-processor/pkg/errors"

	"github.com/gorilla/mux"
)

// optionNames lists every form field that may carry an operation option.
var optionNames = []string{
	"dpi", "format", "width", "height", "quality", "language", "password", "owner_password",
}

var pdfExtensions = map[string]bool{
	".pdf": true,
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// TransformHandler handles file transformation requests
type TransformHandler struct {
	dispatcher domain.Dispatcher
	config     domain.Config
	logger     domain.Logger
}

// NewTransformHandler creates a new transform handler
func NewTransformHandler(dispatcher domain.Dispatcher, config domain.Config, logger domain.Logger) *TransformHandler {
	return &TransformHandler{
		dispatcher: dispatcher,
		config:     config,
		logger:     logger,
	}
}

// Transform accepts one or more uploaded files plus scalar options, runs the
// requested operation and streams the result back as a download.
func (h *TransformHandler) Transform(w http.ResponseWriter, r *http.Request) {
	opID := mux.Vars(r)["operation"]
	op, ok := domain.ParseOperation(opID)
	if !ok {
		writeAppError(w, apperrors.NewUnsupportedOperationError(opID))
		return
	}

	// Leave headroom above the per-file limit for multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, h.config.GetMaxFileSize()*4)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}

	sources := make([]domain.SourceFile, 0, len(files))
	for _, fh := range files {
		src, err := h.readUpload(op, fh)
		if err != nil {
			writeAppError(w, err)
			return
		}
		sources = append(sources, *src)
	}

	opts := make(domain.Options)
	for _, name := range optionNames {
		if v := r.FormValue(name); v != "" {
			opts[name] = v
		}
	}

	result, err := h.dispatcher.Dispatch(r.Context(), op, sources, opts)
	if err != nil {
		h.logger.Error("operation failed", err, "operation", opID, "files", len(sources))
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.MediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

// readUpload validates one uploaded file against the operation's input
// constraints and reads it fully into memory.
func (h *TransformHandler) readUpload(op domain.Operation, fh *multipart.FileHeader) (*domain.SourceFile, error) {
	// Sanitize filename (strip any path components)
	name := strings.TrimSpace(filepath.Base(fh.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}

	ext := strings.ToLower(filepath.Ext(name))
	allowed := allowedExtensions(op)
	if ext == "" || !allowed[ext] {
		return nil, apperrors.NewUnsupportedFormatError(
			fmt.Sprintf("unsupported file type %q for operation %s", ext, op), name)
	}

	if fh.Size > h.config.GetMaxFileSize() {
		return nil, apperrors.NewBadInputError(
			fmt.Sprintf("file too large, maximum size is %d bytes", h.config.GetMaxFileSize()), nil)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperrors.NewBadInputError("failed to read upload", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperrors.NewBadInputError("failed to read upload", err)
	}

	kind := domain.MediaKindImage
	if pdfExtensions[ext] {
		kind = domain.MediaKindPDF
	}

	return &domain.SourceFile{Name: name, Kind: kind, Data: data}, nil
}

// allowedExtensions returns the upload allow-list for the operation.
func allowedExtensions(op domain.Operation) map[string]bool {
	switch op {
	case domain.OperationRasterize, domain.OperationEncrypt, domain.OperationDecrypt:
		return pdfExtensions
	case domain.OperationOCR:
		both := make(map[string]bool, len(pdfExtensions)+len(imageExtensions))
		for ext := range pdfExtensions {
			both[ext] = true
		}
		for ext := range imageExtensions {
			both[ext] = true
		}
		return both
	default:
		return imageExtensions
	}
}
