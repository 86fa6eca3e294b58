package bucket

import (
	"sort"
	"time"

	"followup/internal/core/contact"
)

// Section is one rendered group of contacts
type Section struct {
	Title    string
	New      bool
	Relative RelativeBucket
	Concrete *ConcreteBucket
	Contacts []contact.Record
}

// Sections groups contacts into relative buckets ordered most recent first.
// When newFirst is set, contacts passing IsNew are pulled into a synthetic
// "New" section that always sorts ahead of every other section.
//
// Within a section contacts are ordered by creation time descending; equal
// creation times keep their input order (stable sort, no id or name
// tie-break) so repeated renders of the same data never reshuffle rows.
func Sections(contacts []contact.Record, newFirst bool, now time.Time) []Section {
	bySection := map[int][]contact.Record{}
	const newKey = int(Today) + 1 // sorts ahead of every relative bucket
	for _, c := range contacts {
		k := int(Relative(c.CreatedAt, now))
		if newFirst && IsNew(c, now) {
			k = newKey
		}
		bySection[k] = append(bySection[k], c)
	}

	keys := make([]int, 0, len(bySection))
	for k := range bySection {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	out := make([]Section, 0, len(keys))
	for _, k := range keys {
		members := bySection[k]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].CreatedAt.After(members[j].CreatedAt)
		})
		s := Section{Contacts: members}
		if k == newKey {
			s.New = true
			s.Title = "New"
		} else {
			s.Relative = RelativeBucket(k)
			s.Title = s.Relative.String()
		}
		out = append(out, s)
	}
	return out
}

// ConcreteSections groups contacts by concrete calendar bucket at the given
// granularity, ordered by bucket start descending. Ordering rules within a
// section match Sections.
func ConcreteSections(contacts []contact.Record, g Granularity) []Section {
	type entry struct {
		bucket  ConcreteBucket
		members []contact.Record
	}
	byStart := map[time.Time]*entry{}
	for _, c := range contacts {
		b := Concrete(c.CreatedAt, g)
		k := b.Start()
		e, ok := byStart[k]
		if !ok {
			e = &entry{bucket: b}
			byStart[k] = e
		}
		e.members = append(e.members, c)
	}

	entries := make([]*entry, 0, len(byStart))
	for _, e := range byStart {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].bucket.Start().After(entries[j].bucket.Start())
	})

	out := make([]Section, 0, len(entries))
	for _, e := range entries {
		sort.SliceStable(e.members, func(i, j int) bool {
			return e.members[i].CreatedAt.After(e.members[j].CreatedAt)
		})
		b := e.bucket
		out = append(out, Section{
			Title:    b.Title(),
			Concrete: &b,
			Contacts: e.members,
		})
	}
	return out
}
