package basket

import (
	"strconv"
	"strings"
	"time"
)

// Partition splits entries into live and expired holds, keeping order.
func Partition(entries []Entry, now time.Time, ttl time.Duration) (live, expired []Entry) {
	for _, e := range entries {
		if e.Expired(now, ttl) {
			expired = append(expired, e)
			continue
		}
		live = append(live, e)
	}
	return live, expired
}

// Reconcile splits a stored basket into the holds to keep and the product ids whose
// hold must be released. Expired holds are released, and so are malformed holds
// whose product id is still readable, since they can never be shown again.
func Reconcile(raw string, now time.Time, ttl time.Duration) (keep []Entry, release []int) {
	for _, seg := range strings.Split(raw, entrySep) {
		if seg == "" {
			continue
		}
		e, err := ParseEntry(seg)
		if err != nil {
			head, _, _ := strings.Cut(seg, fieldSep)
			if id, err := strconv.Atoi(strings.TrimSpace(head)); err == nil {
				release = append(release, id)
			}
			continue
		}
		if e.Expired(now, ttl) {
			release = append(release, e.ProductID)
			continue
		}
		keep = append(keep, e)
	}
	return keep, release
}
