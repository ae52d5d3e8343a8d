package ledger

import "strings"

// Matches reports whether query is a case-insensitive substring of
// "store item date". An empty query matches everything.
func Matches(e *Entry, query string) bool {
	if query == "" {
		return true
	}
	hay := strings.ToLower(e.store + " " + e.item + " " + e.date)
	return strings.Contains(hay, strings.ToLower(query))
}

// Filter keeps the entries matching the trimmed query, in their original order.
func Filter(entries []*Entry, query string) []*Entry {
	query = strings.TrimSpace(query)
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, query) {
			out = append(out, e)
		}
	}
	return out
}

// Prepend returns a new slice with e first, matching the newest-first history order.
func Prepend(entries []*Entry, e *Entry) []*Entry {
	out := make([]*Entry, 0, len(entries)+1)
	out = append(out, e)
	return append(out, entries...)
}

// Remove drops the entry with the given id and keeps the rest in order.
func Remove(entries []*Entry, id string) ([]*Entry, error) {
	out := make([]*Entry, 0, len(entries))
	found := false
	for _, e := range entries {
		if e.id == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	if !found {
		return nil, ErrEntryNotFound
	}
	return out, nil
}

func FindByID(entries []*Entry, id string) (*Entry, error) {
	for _, e := range entries {
		if e.id == id {
			return e, nil
		}
	}
	return nil, ErrEntryNotFound
}
