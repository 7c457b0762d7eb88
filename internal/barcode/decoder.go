package barcode

import (
	"context"
	"strings"

	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
)

// Decoder turns raw scanner or operator input into a canonical barcode string.
// Camera-based decoding plugs in behind this interface without touching the
// lookup path.
type Decoder interface {
	Decode(ctx context.Context, raw string) (string, error)
}

// ManualEntry decodes barcodes typed in by hand: trims whitespace and rejects
// anything that is not a plain printable code.
type ManualEntry struct{}

func (ManualEntry) Decode(ctx context.Context, raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "barcode is required")
	}
	for _, r := range code {
		if r < '!' || r > '~' {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "barcode contains invalid characters")
		}
	}
	return code, nil
}
