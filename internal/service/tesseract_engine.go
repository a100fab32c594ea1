package service

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements domain.RecognizerEngine using the gosseract
// client. A fresh client is created per call; the engine itself holds no
// state between invocations.
type TesseractEngine struct{}

// NewTesseractEngine creates a new Tesseract-backed recognizer engine
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{}
}

// Name identifies the OCR provider.
func (e *TesseractEngine) Name() string { return "tesseract" }

// RecognizeImage runs Tesseract over the encoded image and returns the
// extracted text.
func (e *TesseractEngine) RecognizeImage(ctx context.Context, img []byte, language string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := gosseract.NewClient()
	defer c.Close()

	if err := c.SetLanguage(language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := c.SetImageFromBytes(img); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
