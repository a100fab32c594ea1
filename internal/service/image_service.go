package service

import (
	"bytes"
	"image"
	"image/color"

	// Register decoders for the accepted raster formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"file-processor/internal/domain"
	apperrors "file-processor/pkg/errors"

	"github.com/disintegration/imaging"
)

// ImageService implements the single-image transformations: resize and
// JPEG compression.
type ImageService struct {
	logger domain.Logger
}

// NewImageService creates a new image service
func NewImageService(logger domain.Logger) *ImageService {
	return &ImageService{logger: logger}
}

// Resize scales the image to exactly width x height using Lanczos resampling.
// The caller-specified dimensions are applied verbatim; aspect ratio is not
// preserved. The output keeps the encoded format of the input, falling back
// to PNG when the format has no encoder.
func (s *ImageService) Resize(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	width := opts.Int("width", 0)
	height := opts.Int("height", 0)
	if width <= 0 || height <= 0 {
		return nil, apperrors.NewBadInputError("width and height must be positive integers", nil)
	}

	img, formatName, err := decodeImage(src.Data)
	if err != nil {
		return nil, apperrors.NewBadInputError("failed to decode image", err)
	}

	s.logger.Debug("resizing image", "file", src.Name, "width", width, "height", height, "format", formatName)

	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	format, err := imaging.FormatFromExtension("." + formatName)
	if err != nil {
		format = imaging.PNG
		formatName = "png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return nil, apperrors.NewInternalError("failed to encode resized image", err)
	}

	return &domain.OperationResult{
		Data:      buf.Bytes(),
		MediaType: "image/" + formatName,
		Filename:  "resized_image." + formatName,
	}, nil
}

// Compress re-encodes the image as JPEG at the requested quality. Images with
// an alpha or palette channel are flattened onto a white background first so
// the JPEG encoder always receives opaque color data.
func (s *ImageService) Compress(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	quality := opts.IntInRange("quality", 85, 10, 100)

	img, formatName, err := decodeImage(src.Data)
	if err != nil {
		return nil, apperrors.NewBadInputError("failed to decode image", err)
	}

	s.logger.Debug("compressing image", "file", src.Name, "quality", quality, "format", formatName)

	flat := flattenOpaque(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, apperrors.NewInternalError("failed to encode JPEG", err)
	}

	return &domain.OperationResult{
		Data:      buf.Bytes(),
		MediaType: "image/jpeg",
		Filename:  "compressed_image.jpg",
	}, nil
}

// decodeImage decodes PNG, JPEG, GIF, BMP or TIFF bytes and reports the
// detected format name.
func decodeImage(data []byte) (image.Image, string, error) {
	return image.Decode(bytes.NewReader(data))
}

// flattenOpaque composes the image over a white background, discarding any
// alpha channel.
func flattenOpaque(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Point{}, 1.0)
}
