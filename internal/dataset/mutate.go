package dataset

import (
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/strata-labs/strata/internal/ui/shared/table"
)

// Key scopes accepted by NewAPIKey.
var Scopes = []string{"read", "write", "admin"}

const dateLayout = "2006-01-02"

// NewAPIKey builds an api_keys record with a fresh id and masked secret.
// Unknown scopes fall back to read.
func NewAPIKey(name, scope string, now time.Time) table.Record {
	id := uuid.New()
	scope = strings.ToLower(strings.TrimSpace(scope))
	if !validScope(scope) {
		scope = "read"
	}
	hex := strings.ReplaceAll(id.String(), "-", "")

	return table.Record{
		"id":        id.String(),
		"name":      strings.TrimSpace(name),
		"scope":     scope,
		"secret":    "sk_live_••••" + hex[len(hex)-4:],
		"created":   now.Format(dateLayout),
		"last_used": "never",
		"status":    "active",
	}
}

func validScope(scope string) bool {
	for _, s := range Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// NewBucket builds a buckets record for an empty bucket.
func NewBucket(name, region string, now time.Time) table.Record {
	if region == "" {
		region = "us-east-1"
	}
	return table.Record{
		"name":       strings.TrimSpace(name),
		"region":     region,
		"objects":    0,
		"size_gb":    0.0,
		"visibility": "private",
		"created":    now.Format(dateLayout),
	}
}

// Append returns a new slice with record added at the end.
func Append(records []table.Record, record table.Record) []table.Record {
	out := make([]table.Record, 0, len(records)+1)
	out = append(out, records...)
	return append(out, record)
}

// RemoveAt returns a new slice without the record at i. Out of range
// indexes return an unmodified copy.
func RemoveAt(records []table.Record, i int) []table.Record {
	out := make([]table.Record, 0, len(records))
	for j, r := range records {
		if j != i {
			out = append(out, r)
		}
	}
	return out
}

// Toggle returns a copy of record with the boolean field flipped. Values
// that do not parse as booleans count as false.
func Toggle(record table.Record, field string) table.Record {
	out := maps.Clone(record)
	if out == nil {
		out = table.Record{}
	}
	out[field] = !cast.ToBool(out[field])
	return out
}
