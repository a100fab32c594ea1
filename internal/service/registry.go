package service

import (
	"context"

	"file-processor/internal/domain"
	apperrors "file-processor/pkg/errors"
)

// Registry routes an operation id to the matching transformation service.
// Dispatch is an exhaustive switch over the Operation enum; unknown ids are
// rejected before any file content is interpreted.
type Registry struct {
	rasterizer domain.Rasterizer
	assembler  domain.PDFAssembler
	images     domain.ImageTransformer
	recognizer domain.TextRecognizer
	securer    domain.PDFSecurer
	logger     domain.Logger
}

// NewRegistry creates a new operation registry
func NewRegistry(
	rasterizer domain.Rasterizer,
	assembler domain.PDFAssembler,
	images domain.ImageTransformer,
	recognizer domain.TextRecognizer,
	securer domain.PDFSecurer,
	logger domain.Logger,
) *Registry {
	return &Registry{
		rasterizer: rasterizer,
		assembler:  assembler,
		images:     images,
		recognizer: recognizer,
		securer:    securer,
		logger:     logger,
	}
}

// Dispatch invokes the handler for op with the given sources and options.
// Every handler returns either a complete result or an error, never partial
// output.
func (r *Registry) Dispatch(ctx context.Context, op domain.Operation, sources []domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	if len(sources) == 0 {
		return nil, apperrors.NewBadInputError(domain.ErrFileRequired.Error(), domain.ErrFileRequired)
	}
	if len(sources) > 1 && !op.AcceptsMultipleFiles() {
		return nil, apperrors.NewBadInputError(domain.ErrSingleFileOnly.Error(), domain.ErrSingleFileOnly)
	}

	r.logger.Debug("dispatching operation", "operation", op, "files", len(sources))

	src := sources[0]
	switch op {
	case domain.OperationRasterize:
		return r.rasterizer.Rasterize(src, opts)
	case domain.OperationImagesToPDF:
		return r.assembler.Assemble(sources, opts)
	case domain.OperationResize:
		return r.images.Resize(src, opts)
	case domain.OperationCompress:
		return r.images.Compress(src, opts)
	case domain.OperationOCR:
		return r.recognizer.Recognize(ctx, src, opts)
	case domain.OperationEncrypt:
		return r.securer.Encrypt(src, opts)
	case domain.OperationDecrypt:
		return r.securer.Decrypt(src, opts)
	default:
		return nil, apperrors.NewUnsupportedOperationError(string(op))
	}
}
