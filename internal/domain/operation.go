// Package domain holds the core types shared by handlers and services.
package domain

// Operation identifies one of the fixed file transformations.
type Operation string

const (
	OperationRasterize   Operation = "rasterize"
	OperationImagesToPDF Operation = "images-to-pdf"
	OperationResize      Operation = "resize"
	OperationCompress    Operation = "compress"
	OperationOCR         Operation = "ocr"
	OperationEncrypt     Operation = "encrypt"
	OperationDecrypt     Operation = "decrypt"
)

// Operations returns the closed set of supported operations in catalog order.
func Operations() []Operation {
	return []Operation{
		OperationRasterize,
		OperationImagesToPDF,
		OperationResize,
		OperationCompress,
		OperationOCR,
		OperationEncrypt,
		OperationDecrypt,
	}
}

// ParseOperation maps a request path segment onto the Operation enum.
// Anything outside the fixed set is rejected.
func ParseOperation(s string) (Operation, bool) {
	op := Operation(s)
	switch op {
	case OperationRasterize, OperationImagesToPDF, OperationResize,
		OperationCompress, OperationOCR, OperationEncrypt, OperationDecrypt:
		return op, true
	}
	return "", false
}

// AcceptsMultipleFiles reports whether the operation takes an ordered list of
// input files instead of exactly one.
func (op Operation) AcceptsMultipleFiles() bool {
	return op == OperationImagesToPDF
}
