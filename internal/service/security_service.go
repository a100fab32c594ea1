package service

import (
	"bytes"
	"strings"

	"file-processor/internal/domain"
	apperrors "file-processor/pkg/errors"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const aesKeyLength = 256

// SecurityService encrypts and decrypts PDFs with AES-256.
type SecurityService struct {
	logger domain.Logger
}

// NewSecurityService creates a new security service
func NewSecurityService(logger domain.Logger) *SecurityService {
	return &SecurityService{logger: logger}
}

// Encrypt protects the PDF with the given user password. The owner password
// defaults to the user password when not provided. Pages are copied verbatim.
func (s *SecurityService) Encrypt(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	userPW := opts.String("password", "")
	if userPW == "" {
		return nil, apperrors.NewBadInputError("user password is required", domain.ErrPasswordRequired)
	}
	ownerPW := opts.String("owner_password", userPW)

	s.logger.Debug("encrypting PDF", "file", src.Name, "key_length", aesKeyLength)

	conf := model.NewAESConfiguration(userPW, ownerPW, aesKeyLength)
	var out bytes.Buffer
	if err := api.Encrypt(bytes.NewReader(src.Data), &out, conf); err != nil {
		// Blame the input only when it does not parse as a PDF in the
		// first place.
		if _, readErr := api.ReadContext(bytes.NewReader(src.Data), model.NewDefaultConfiguration()); readErr != nil {
			return nil, apperrors.NewBadInputError("failed to encrypt PDF", err)
		}
		return nil, apperrors.NewInternalError("failed to encrypt PDF", err)
	}

	return &domain.OperationResult{
		Data:      out.Bytes(),
		MediaType: "application/pdf",
		Filename:  "encrypted.pdf",
	}, nil
}

// Decrypt removes the encryption from the PDF. A PDF that is not encrypted is
// returned unchanged. A wrong password is reported as a distinct failure.
func (s *SecurityService) Decrypt(src domain.SourceFile, opts domain.Options) (*domain.OperationResult, error) {
	encrypted, err := s.isEncrypted(src.Data)
	if err != nil {
		return nil, err
	}
	if !encrypted {
		s.logger.Debug("PDF is not encrypted, returning input unchanged", "file", src.Name)
		return &domain.OperationResult{
			Data:      src.Data,
			MediaType: "application/pdf",
			Filename:  "decrypted.pdf",
		}, nil
	}

	password := opts.String("password", "")
	if password == "" {
		return nil, apperrors.NewBadInputError("password is required for an encrypted PDF", domain.ErrPasswordRequired)
	}

	s.logger.Debug("decrypting PDF", "file", src.Name)

	conf := model.NewAESConfiguration(password, password, aesKeyLength)
	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(src.Data), &out, conf); err != nil {
		if isPasswordError(err) {
			return nil, apperrors.NewWrongPasswordError("incorrect password")
		}
		return nil, apperrors.NewBadInputError("failed to decrypt PDF", err)
	}

	return &domain.OperationResult{
		Data:      out.Bytes(),
		MediaType: "application/pdf",
		Filename:  "decrypted.pdf",
	}, nil
}

// isEncrypted probes the PDF without a password. A read failure that mentions
// a password means the file is encrypted; any other failure means the file
// is not a readable PDF.
func (s *SecurityService) isEncrypted(data []byte) (bool, error) {
	ctx, err := api.ReadContext(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		if isPasswordError(err) {
			return true, nil
		}
		return false, apperrors.NewBadInputError("failed to open PDF", err)
	}
	return ctx.XRefTable.Encrypt != nil, nil
}

// isPasswordError matches pdfcpu's authentication failures. pdfcpu exports no
// sentinel for these, so classification relies on its stable error text.
func isPasswordError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "password")
}
