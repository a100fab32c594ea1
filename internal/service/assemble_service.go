package service

import (
	"bytes"
	"fmt"
	"io"

	"file-processor/internal/domain"
	apperrors "file-processor/pkg/errors"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

const embedJPEGQuality = 95

// AssembleService builds a single PDF from an ordered list of images.
type AssembleService struct {
	logger domain.Logger
}

// NewAssembleService creates a new assemble service
func NewAssembleService(logger domain.Logger) *AssembleService {
	return &AssembleService{logger: logger}
}

// Assemble embeds the images into a new PDF, one page per image, in input
// order. Every image is normalized to an opaque RGB JPEG before embedding so
// mixed color models (alpha, palette) cannot leak into the page content.
func (s *AssembleService) Assemble(sources []domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	if len(sources) == 0 {
		return nil, apperrors.NewBadInputError(domain.ErrFileRequired.Error(), domain.ErrFileRequired)
	}

	readers := make([]io.Reader, 0, len(sources))
	for i, src := range sources {
		s.logger.Debug("normalizing image", "page", i+1, "total", len(sources), "file", src.Name)

		img, _, err := decodeImage(src.Data)
		if err != nil {
			return nil, apperrors.NewBadInputError(fmt.Sprintf("failed to decode image %q", src.Name), err)
		}

		var jb bytes.Buffer
		if err := imaging.Encode(&jb, flattenOpaque(img), imaging.JPEG, imaging.JPEGQuality(embedJPEGQuality)); err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to normalize image %q", src.Name), err)
		}
		readers = append(readers, bytes.NewReader(jb.Bytes()))
	}

	var out bytes.Buffer
	if err := api.ImportImages(nil, &out, readers, pdfcpu.DefaultImportConfig(), nil); err != nil {
		return nil, apperrors.NewInternalError("failed to build PDF from images", err)
	}

	return &domain.OperationResult{
		Data:      out.Bytes(),
		MediaType: "application/pdf",
		Filename:  "converted_images.pdf",
	}, nil
}
