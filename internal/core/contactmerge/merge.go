package contactmerge

import (
	"time"

	"followup/internal/core/contact"
)

// Merge unifies two contact lists from different origins by merge key.
// Primary records win on every field except creation time: when a secondary
// record matches, its CreatedAt overwrites the primary's, because the
// secondary source (the device address book) is authoritative for when the
// contact originally existed. Unmatched secondary records are inserted
// verbatim. Output order follows primary order with appended secondaries,
// but callers must re-sort; the order is not part of the contract.
func Merge(primary, secondary []contact.Record) []contact.Record {
	type slot struct{ idx int }
	byKey := make(map[uint64]slot, len(primary))
	out := make([]contact.Record, 0, len(primary)+len(secondary))

	for _, p := range primary {
		k := Key(p.Name, p.Phone, p.Email)
		if _, dup := byKey[k]; dup {
			continue // first primary record for a key wins
		}
		byKey[k] = slot{idx: len(out)}
		out = append(out, p)
	}
	for _, s := range secondary {
		k := Key(s.Name, s.Phone, s.Email)
		if sl, ok := byKey[k]; ok {
			out[sl.idx].CreatedAt = s.CreatedAt
			continue
		}
		byKey[k] = slot{idx: len(out)}
		out = append(out, s)
	}
	return out
}

// Reconcile folds incoming records into the existing id-keyed set. A
// same-id conflict keeps whichever record interacted more recently, with a
// nil LastInteractionAt treated as the distant past; an exact tie keeps the
// existing record, which makes repeated application idempotent:
// Reconcile(Reconcile(A, B), B) == Reconcile(A, B).
// The input map is not mutated.
func Reconcile(existing map[string]contact.Record, incoming []contact.Record) map[string]contact.Record {
	out := make(map[string]contact.Record, len(existing)+len(incoming))
	for id, c := range existing {
		out[id] = c
	}
	for _, in := range incoming {
		cur, ok := out[in.ID]
		if !ok || interactionTime(in).After(interactionTime(cur)) {
			out[in.ID] = in
		}
	}
	return out
}

// interactionTime maps a missing last interaction to the zero time
func interactionTime(c contact.Record) time.Time {
	if c.LastInteractionAt == nil {
		return time.Time{}
	}
	return *c.LastInteractionAt
}
