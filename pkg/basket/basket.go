// Package basket reads and writes the compact basket string stored on a user row.
//
// A basket is a comma separated list of holds. Each hold is six colon separated
// fields: product_id:size:price:city:district:created_at, where created_at is
// epoch seconds. ',', ':' and '%' inside text fields are percent-encoded, so
// values without them are stored unchanged.
package basket

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	entrySep  = ","
	fieldSep  = ":"
	numFields = 6
)

var (
	fieldEscaper   = strings.NewReplacer("%", "%25", ",", "%2C", ":", "%3A")
	fieldUnescaper = strings.NewReplacer("%25", "%", "%2C", ",", "%3A", ":", "%2c", ",", "%3a", ":")
)

var (
	ErrTooFewFields     = errors.New("basket entry has fewer than six fields")
	ErrInvalidProductID = errors.New("basket entry has a non-numeric product id")
	ErrInvalidCreatedAt = errors.New("basket entry has a non-numeric creation time")
)

type Entry struct {
	ProductID int
	Size      string
	Price     string
	City      string
	District  string
	// CreatedAt is epoch seconds with sub-second precision.
	CreatedAt float64
}

func NewEntry(productID int, size string, price float64, city, district string, createdAt time.Time) Entry {
	return Entry{
		ProductID: productID,
		Size:      size,
		Price:     strconv.FormatFloat(price, 'f', -1, 64),
		City:      city,
		District:  district,
		CreatedAt: epochSeconds(createdAt),
	}
}

// Expired reports whether the hold is past ttl. A hold exactly ttl old is still live.
func (e Entry) Expired(now time.Time, ttl time.Duration) bool {
	return epochSeconds(now)-e.CreatedAt > ttl.Seconds()
}

func (e Entry) String() string {
	return strings.Join([]string{
		strconv.Itoa(e.ProductID),
		fieldEscaper.Replace(e.Size),
		fieldEscaper.Replace(e.Price),
		fieldEscaper.Replace(e.City),
		fieldEscaper.Replace(e.District),
		strconv.FormatFloat(e.CreatedAt, 'f', -1, 64),
	}, fieldSep)
}

// ParseEntry decodes one hold. Fields past the sixth are ignored.
func ParseEntry(s string) (Entry, error) {
	parts := strings.Split(s, fieldSep)
	if len(parts) < numFields {
		return Entry{}, ErrTooFewFields
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Entry{}, ErrInvalidProductID
	}
	createdAt, err := strconv.ParseFloat(strings.TrimSpace(parts[5]), 64)
	if err != nil || math.IsNaN(createdAt) || math.IsInf(createdAt, 0) {
		return Entry{}, ErrInvalidCreatedAt
	}
	return Entry{
		ProductID: id,
		Size:      fieldUnescaper.Replace(parts[1]),
		Price:     fieldUnescaper.Replace(parts[2]),
		City:      fieldUnescaper.Replace(parts[3]),
		District:  fieldUnescaper.Replace(parts[4]),
		CreatedAt: createdAt,
	}, nil
}

// Parse decodes a stored basket in order. Malformed entries are dropped and the
// rest of the basket is still returned.
func Parse(raw string) []Entry {
	var entries []Entry
	for _, seg := range strings.Split(raw, entrySep) {
		if seg == "" {
			continue
		}
		e, err := ParseEntry(seg)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func Encode(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, entrySep)
}

// ProductIDs returns the product id of every stored hold whose id can be read,
// including holds that are otherwise malformed. Each id appears once per hold.
func ProductIDs(raw string) []int {
	var ids []int
	for _, seg := range strings.Split(raw, entrySep) {
		if seg == "" {
			continue
		}
		head, _, _ := strings.Cut(seg, fieldSep)
		id, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
