package numbering

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Document number prefixes. Every related document shares the owning
// project's numeric suffix and differs only in this fixed segment.
const (
	ProjectPrefix        = "PRJAGA"
	EstimationPrefix     = "ESTAGA"
	QuotationPrefix      = "QTN"
	WorkCompletionPrefix = "WCPAGA"
	InvoicePrefix        = "INV"
)

var ErrMalformedProjectNumber = errors.New("malformed project number")

// ProjectNumber formats PRJAGA{YY}{seq:04} for the given issue time and
// reserved sequence number.
func ProjectNumber(at time.Time, seq int64) string {
	return fmt.Sprintf("%s%02d%04d", ProjectPrefix, at.Year()%100, seq)
}

// RelatedNumber swaps the PRJAGA segment of a project number for the given
// document prefix, preserving the year+sequence suffix.
func RelatedNumber(projectNumber, prefix string) (string, error) {
	suffix, err := Suffix(projectNumber)
	if err != nil {
		return "", err
	}
	return prefix + suffix, nil
}

// InvoiceNumber derives INV{suffix} from a project number.
func InvoiceNumber(projectNumber string) (string, error) {
	return RelatedNumber(projectNumber, InvoicePrefix)
}

// Suffix extracts the numeric {YY}{seq} tail of a project number.
func Suffix(projectNumber string) (string, error) {
	if !strings.HasPrefix(projectNumber, ProjectPrefix) {
		return "", fmt.Errorf("%w: %q", ErrMalformedProjectNumber, projectNumber)
	}
	suffix := strings.TrimPrefix(projectNumber, ProjectPrefix)
	if len(suffix) < 6 {
		return "", fmt.Errorf("%w: %q", ErrMalformedProjectNumber, projectNumber)
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrMalformedProjectNumber, projectNumber)
		}
	}
	return suffix, nil
}
