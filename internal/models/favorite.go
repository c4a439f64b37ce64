package models

// FavoritesList is the ordered list of bookmarked recipes for one profile.
// It is persisted wholesale as a JSON array.
type FavoritesList []Recipe

// Contains reports whether any entry has the given identifier.
func (l FavoritesList) Contains(id string) bool {
	for _, r := range l {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Add appends r and returns the new list. It does not dedupe by identifier;
// callers only offer Add when Contains is false.
func (l FavoritesList) Add(r Recipe) FavoritesList {
	out := make(FavoritesList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, r)
}

// Remove returns the list without any entry whose identifier equals id.
func (l FavoritesList) Remove(id string) FavoritesList {
	out := make(FavoritesList, 0, len(l))
	for _, r := range l {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
