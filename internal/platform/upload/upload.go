package upload

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
)

const pdfMIME = "application/pdf"

// imageMIMEs are the raster formats accepted for pictures. SVG is not one.
var imageMIMEs = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

func isAllowedImage(mt *mimetype.MIME) bool {
	for _, allowed := range imageMIMEs {
		if mt.Is(allowed) {
			return true
		}
	}
	return false
}

// ServableInline reports whether a stored content type may be rendered by
// the browser rather than downloaded.
func ServableInline(contentType string) bool {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(contentType)), ";")
	base = strings.TrimSpace(base)
	if base == pdfMIME {
		return true
	}
	for _, allowed := range imageMIMEs {
		if base == allowed {
			return true
		}
	}
	return false
}

// Policy describes what an upload field accepts.
type Policy struct {
	Field    string
	MaxBytes int64
	AllowPDF bool
}

// PermitPolicy accepts images and readable PDFs.
func PermitPolicy(maxBytes int64) Policy {
	return Policy{Field: "businessPermit", MaxBytes: maxBytes, AllowPDF: true}
}

// ImagePolicy accepts images only.
func ImagePolicy(field string, maxBytes int64) Policy {
	return Policy{Field: field, MaxBytes: maxBytes}
}

// Inspected is an upload whose content has been read and checked.
type Inspected struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the content length.
func (i *Inspected) Size() int64 { return int64(len(i.Data)) }

// Reader returns a fresh reader over the content.
func (i *Inspected) Reader() io.Reader { return bytes.NewReader(i.Data) }

// Inspect reads the file (bounded by the policy), sniffs its type from the
// content and, for PDFs, checks the document parses with at least one page.
func Inspect(f domain.FileUpload, p Policy) (*Inspected, error) {
	if f.Body == nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s file is missing.", p.Field))
	}
	if p.MaxBytes > 0 && f.Size > p.MaxBytes {
		return nil, tooLarge(p)
	}
	limit := p.MaxBytes
	if limit <= 0 {
		limit = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(f.Body, limit+1))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NewValidationError("Could not read uploaded file."), err)
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(p)
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s file is empty.", p.Field))
	}

	mt := mimetype.Detect(data)
	contentType := mt.String()
	switch {
	case isAllowedImage(mt):
	case p.AllowPDF && mt.Is(pdfMIME):
		if pages, err := pdfPages(data); err != nil || pages < 1 {
			return nil, apperrors.Wrap(apperrors.NewValidationError("Business permit PDF could not be read."), err)
		}
		contentType = pdfMIME
	case p.AllowPDF:
		return nil, apperrors.NewValidationError("Business permit must be a PDF or image file.")
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("Only image files are allowed for %s.", p.Field))
	}

	return &Inspected{Filename: f.Filename, ContentType: contentType, Data: data}, nil
}

func tooLarge(p Policy) error {
	return apperrors.NewValidationError(fmt.Sprintf("%s file is too large. Maximum size is %dMB.", p.Field, p.MaxBytes>>20))
}

// pdfPages counts pages. The parser panics on some malformed input.
func pdfPages(data []byte) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}
