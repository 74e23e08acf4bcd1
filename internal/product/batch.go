package product

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"
)

// qrScheme is the URI scheme encoded into batch QR codes
const qrScheme = "farmtrace://"

// NewBatchID returns a batch identifier of the form PREFIX-YEAR-SUFFIX, e.g. TOM-2026-7K3Q9D.
// The prefix is the first three letters of the category; the suffix is taken from the random part of a ULID.
func NewBatchID(category string, now time.Time) string {
	var prefix strings.Builder
	for _, r := range category {
		if prefix.Len() == 3 {
			break
		}
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			prefix.WriteRune(unicode.ToUpper(r))
		}
	}
	for prefix.Len() < 3 {
		prefix.WriteByte('X')
	}

	id := ulid.Make().String()
	return fmt.Sprintf("%s-%d-%s", prefix.String(), now.Year(), id[len(id)-6:])
}

// QRPayload returns the payload rendered into the QR code of a batch
func QRPayload(batchID string) string {
	return qrScheme + batchID
}
