package handler

import (
	"net/http"

	"file-processor/internal/domain"
)

// optionSpec describes one form option so clients can render controls with
// the correct ranges.
type optionSpec struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required,omitempty"`
	Default  string   `json:"default,omitempty"`
	Min      int      `json:"min,omitempty"`
	Max      int      `json:"max,omitempty"`
	Values   []string `json:"values,omitempty"`
}

// operationSpec describes one operation in the catalog.
type operationSpec struct {
	ID            string       `json:"id"`
	Label         string       `json:"label"`
	MultipleFiles bool         `json:"multiple_files"`
	Accept        string       `json:"accept"`
	Options       []optionSpec `json:"options"`
}

// ListOperations returns the operation catalog.
func (h *TransformHandler) ListOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, operationCatalog())
}

func operationCatalog() []operationSpec {
	return []operationSpec{
		{
			ID:     string(domain.OperationRasterize),
			Label:  "PDF to Images",
			Accept: ".pdf",
			Options: []optionSpec{
				{Name: "dpi", Type: "int", Default: "200", Min: 72, Max: 300},
				{Name: "format", Type: "enum", Default: "png", Values: []string{"png", "jpeg"}},
			},
		},
		{
			ID:            string(domain.OperationImagesToPDF),
			Label:         "Images to PDF",
			MultipleFiles: true,
			Accept:        ".png,.jpg,.jpeg,.gif,.bmp,.tif,.tiff",
		},
		{
			ID:     string(domain.OperationResize),
			Label:  "Resize Image",
			Accept: ".png,.jpg,.jpeg,.gif,.bmp,.tif,.tiff",
			Options: []optionSpec{
				{Name: "width", Type: "int", Required: true, Min: 1},
				{Name: "height", Type: "int", Required: true, Min: 1},
			},
		},
		{
			ID:     string(domain.OperationCompress),
			Label:  "Compress Image",
			Accept: ".png,.jpg,.jpeg,.gif,.bmp,.tif,.tiff",
			Options: []optionSpec{
				{Name: "quality", Type: "int", Default: "85", Min: 10, Max: 100},
			},
		},
		{
			ID:     string(domain.OperationOCR),
			Label:  "Extract Text (OCR)",
			Accept: ".pdf,.png,.jpg,.jpeg,.gif,.bmp,.tif,.tiff",
			Options: []optionSpec{
				{Name: "language", Type: "enum", Default: "eng", Values: []string{"eng", "spa", "fra", "deu", "ita", "por"}},
			},
		},
		{
			ID:     string(domain.OperationEncrypt),
			Label:  "Encrypt PDF",
			Accept: ".pdf",
			Options: []optionSpec{
				{Name: "password", Type: "password", Required: true},
				{Name: "owner_password", Type: "password"},
			},
		},
		{
			ID:     string(domain.OperationDecrypt),
			Label:  "Decrypt PDF",
			Accept: ".pdf",
			Options: []optionSpec{
				{Name: "password", Type: "password"},
			},
		},
	}
}
