package domain

import "context"

// Rasterizer renders PDF pages to images packed into an archive.
type Rasterizer interface {
	Rasterize(src SourceFile, opts Options) (*OperationResult, error)
}

// PDFAssembler builds a single PDF from an ordered list of images.
type PDFAssembler interface {
	Assemble(sources []SourceFile, opts Options) (*OperationResult, error)
}

// ImageTransformer covers the single-image transformations.
type ImageTransformer interface {
	Resize(src SourceFile, opts Options) (*OperationResult, error)
	Compress(src SourceFile, opts Options) (*OperationResult, error)
}

// TextRecognizer runs optical character recognition over a PDF or image.
type TextRecognizer interface {
	Recognize(ctx context.Context, src SourceFile, opts Options) (*OperationResult, error)
}

// RecognizerEngine is the low-level OCR provider contract: one encoded image
// in, recognized text out.
type RecognizerEngine interface {
	Name() string
	RecognizeImage(ctx context.Context, img []byte, language string) (string, error)
}

// PDFSecurer encrypts and decrypts PDFs with a password.
type PDFSecurer interface {
	Encrypt(src SourceFile, opts Options) (*OperationResult, error)
	Decrypt(src SourceFile, opts Options) (*OperationResult, error)
}

// Dispatcher routes an operation id to the matching transformation.
type Dispatcher interface {
	Dispatch(ctx context.Context, op Operation, sources []SourceFile, opts Options) (*OperationResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetOCRDefaultLanguage() string
}
