package service

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"file-processor/internal/domain"
	apperrors "file-processor/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// ocrRenderDPI is the resolution used when rasterizing PDF pages for
// recognition.
const ocrRenderDPI = 300

// ocrLanguages is the fixed set of accepted language codes. Anything else
// silently degrades to the configured default.
var ocrLanguages = map[string]bool{
	"eng": true,
	"spa": true,
	"fra": true,
	"deu": true,
	"ita": true,
	"por": true,
}

// OCRService extracts text from images and PDFs. PDFs are rasterized page by
// page and each page is recognized independently.
type OCRService struct {
	engine          domain.RecognizerEngine
	logger          domain.Logger
	defaultLanguage string
}

// NewOCRService creates a new OCR service
func NewOCRService(engine domain.RecognizerEngine, logger domain.Logger, defaultLanguage string) *OCRService {
	if !ocrLanguages[defaultLanguage] {
		defaultLanguage = "eng"
	}
	return &OCRService{
		engine:          engine,
		logger:          logger,
		defaultLanguage: defaultLanguage,
	}
}

// Recognize runs OCR and returns the extracted text as plain UTF-8, one block
// per page for PDF input.
func (s *OCRService) Recognize(ctx context.Context, src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	lang := strings.ToLower(opts.String("language", s.defaultLanguage))
	if !ocrLanguages[lang] {
		s.logger.Warn("unsupported OCR language, using default", "language", lang, "default", s.defaultLanguage)
		lang = s.defaultLanguage
	}

	var blocks []string
	var err error
	if src.Kind == domain.MediaKindPDF {
		blocks, err = s.recognizePDF(ctx, src.Data, lang)
	} else {
		blocks, err = s.recognizeImage(ctx, src.Data, lang)
	}
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for i, block := range blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if src.Kind == domain.MediaKindPDF {
			fmt.Fprintf(&sb, "=== Page %d ===\n", i+1)
		}
		sb.WriteString(block)
	}

	return &domain.OperationResult{
		Data:      []byte(sb.String()),
		MediaType: "text/plain; charset=utf-8",
		Filename:  "extracted_text.txt",
	}, nil
}

// recognizePDF rasterizes every page and recognizes them one at a time,
// logging a linear per-page counter as it goes.
func (s *OCRService) recognizePDF(ctx context.Context, data []byte, lang string) ([]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, apperrors.NewBadInputError("failed to open PDF", err)
	}
	defer doc.Close()

	total := doc.NumPage()
	blocks := make([]string, 0, total)

	for pageNum := 0; pageNum < total; pageNum++ {
		s.logger.Debug("recognizing page", "engine", s.engine.Name(), "page", pageNum+1, "total", total, "language", lang)

		img, err := doc.ImageDPI(pageNum, ocrRenderDPI)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to render page %d", pageNum+1), err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to encode page %d", pageNum+1), err)
		}

		text, err := s.engine.RecognizeImage(ctx, buf.Bytes(), lang)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("recognition failed on page %d", pageNum+1), err)
		}
		blocks = append(blocks, strings.TrimSpace(text))
	}

	return blocks, nil
}

func (s *OCRService) recognizeImage(ctx context.Context, data []byte, lang string) ([]string, error) {
	s.logger.Debug("recognizing image", "engine", s.engine.Name(), "language", lang)

	text, err := s.engine.RecognizeImage(ctx, data, lang)
	if err != nil {
		return nil, apperrors.NewInternalError("recognition failed", err)
	}
	return []string{strings.TrimSpace(text)}, nil
}
