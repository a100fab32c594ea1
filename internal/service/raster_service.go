// Package service implements the file transformations and their dispatcher.
package service

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"strings"

	"file-processor/internal/domain"
	apperrors "file-processor/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

const rasterJPEGQuality = 90

// RasterService renders PDF pages to images and packs them into a zip archive.
type RasterService struct {
	logger domain.Logger
}

// NewRasterService creates a new raster service
func NewRasterService(logger domain.Logger) *RasterService {
	return &RasterService{logger: logger}
}

// Rasterize renders every page of the PDF at the requested DPI and returns a
// zip archive with one page_N.<format> entry per page. A PDF without pages
// yields a valid empty archive.
func (s *RasterService) Rasterize(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	format := strings.ToLower(opts.String("format", "png"))
	if format != "png" && format != "jpeg" {
		// Outside the enumerated set: degrade to the default rather than fail.
		s.logger.Warn("unknown raster format, using png", "format", format)
		format = "png"
	}
	dpi := opts.IntInRange("dpi", 200, 72, 300)

	doc, err := fitz.NewFromMemory(src.Data)
	if err != nil {
		return nil, apperrors.NewBadInputError("failed to open PDF", err)
	}
	defer doc.Close()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	total := doc.NumPage()

	for pageNum := 0; pageNum < total; pageNum++ {
		s.logger.Debug("rasterizing page", "page", pageNum+1, "total", total, "dpi", dpi)

		img, err := doc.ImageDPI(pageNum, float64(dpi))
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to render page %d", pageNum+1), err)
		}

		entry, err := zw.Create(fmt.Sprintf("page_%d.%s", pageNum+1, format))
		if err != nil {
			return nil, apperrors.NewInternalError("failed to write archive entry", err)
		}
		if format == "jpeg" {
			err = jpeg.Encode(entry, img, &jpeg.Options{Quality: rasterJPEGQuality})
		} else {
			err = png.Encode(entry, img)
		}
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to encode page %d", pageNum+1), err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, apperrors.NewInternalError("failed to finalize archive", err)
	}

	return &domain.OperationResult{
		Data:      buf.Bytes(),
		MediaType: "application/zip",
		Filename:  "converted_images_" + format + ".zip",
	}, nil
}
