package platform

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// suffixModulus keeps the last six digits of an epoch-millisecond timestamp.
const suffixModulus = 1_000_000

func NewID() string {
	return uuid.New().String()
}

// NewTicketID returns prefix followed by the last six digits of now in epoch
// milliseconds, e.g. INC482913. Two timestamps exactly 1,000,000 ms apart
// produce the same ID; the store's primary key rejects the second insert.
func NewTicketID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%06d", prefix, now.UnixMilli()%suffixModulus)
}

// NewReportID is NewTicketID with the REP prefix.
func NewReportID(now time.Time) string {
	return NewTicketID("REP", now)
}

// ObjectKey is the storage key, and public URL path, of a generated report
// file. Example: REP120443.pdf
func ObjectKey(id, ext string) string {
	return id + "." + ext
}
