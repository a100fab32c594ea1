package service

import (
	"context"
	"testing"

	"file-processor/internal/domain"
	apperrors "file-processor/pkg/errors"
)

// Mock implementations recording which handler the registry selected.
type mockOps struct {
	called string
}

func (m *mockOps) result(name string) (*domain.OperationResult, error) {
	m.called = name
	return &domain.OperationResult{Data: []byte(name), MediaType: "application/octet-stream", Filename: name}, nil
}

func (m *mockOps) Rasterize(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	return m.result("rasterize")
}

func (m *mockOps) Assemble(sources []domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	return m.result("assemble")
}

func (m *mockOps) Resize(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	return m.result("resize")
}

func (m *mockOps) Compress(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	return m.result("compress")
}

func (m *mockOps) Recognize(ctx context.Context, src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	return m.result("recognize")
}

func (m *mockOps) Encrypt(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	return m.result("encrypt")
}

func (m *mockOps) Decrypt(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	return m.result("decrypt")
}

func newTestRegistry(m *mockOps) *Registry {
	return NewRegistry(m, m, m, m, m, NewMockServiceLogger())
}

func TestRegistry_RoutesEveryOperation(t *testing.T) {
	cases := []struct {
		op     domain.Operation
		called string
	}{
		{domain.OperationRasterize, "rasterize"},
		{domain.OperationImagesToPDF, "assemble"},
		{domain.OperationResize, "resize"},
		{domain.OperationCompress, "compress"},
		{domain.OperationOCR, "recognize"},
		{domain.OperationEncrypt, "encrypt"},
		{domain.OperationDecrypt, "decrypt"},
	}

	for _, tc := range cases {
		m := &mockOps{}
		registry := newTestRegistry(m)

		sources := []domain.SourceFile{{Name: "a", Kind: domain.MediaKindPDF, Data: []byte("x")}}
		if _, err := registry.Dispatch(context.Background(), tc.op, sources, domain.Options{}); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.op, err)
		}
		if m.called != tc.called {
			t.Fatalf("%s: expected %s handler, got %s", tc.op, tc.called, m.called)
		}
	}
}

func TestRegistry_UnknownOperation(t *testing.T) {
	registry := newTestRegistry(&mockOps{})

	sources := []domain.SourceFile{{Name: "a", Data: []byte("x")}}
	_, err := registry.Dispatch(context.Background(), domain.Operation("split"), sources, domain.Options{})
	if !apperrors.IsType(err, apperrors.ErrorTypeUnsupportedOperation) {
		t.Fatalf("expected unsupported_operation, got %v", err)
	}
}

func TestRegistry_NoFiles(t *testing.T) {
	registry := newTestRegistry(&mockOps{})

	_, err := registry.Dispatch(context.Background(), domain.OperationResize, nil, domain.Options{})
	if !apperrors.IsType(err, apperrors.ErrorTypeBadInput) {
		t.Fatalf("expected bad_input, got %v", err)
	}
}

func TestRegistry_MultipleFilesOnlyForAssemble(t *testing.T) {
	m := &mockOps{}
	registry := newTestRegistry(m)

	sources := []domain.SourceFile{
		{Name: "a", Data: []byte("x")},
		{Name: "b", Data: []byte("y")},
	}

	_, err := registry.Dispatch(context.Background(), domain.OperationResize, sources, domain.Options{})
	if !apperrors.IsType(err, apperrors.ErrorTypeBadInput) {
		t.Fatalf("expected bad_input for multi-file resize, got %v", err)
	}

	if _, err := registry.Dispatch(context.Background(), domain.OperationImagesToPDF, sources, domain.Options{}); err != nil {
		t.Fatalf("unexpected error for multi-file assemble: %v", err)
	}
	if m.called != "assemble" {
		t.Fatalf("expected assemble handler, got %s", m.called)
	}
}
