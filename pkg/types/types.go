// Package types defines the small shared records a binary data viewer
// exchanges with its front ends: address regions and the bookmarks that
// annotate them. These are plain data holders with no behavior beyond
// region arithmetic.
package types

// Region is a span of addresses: Size bytes starting at Address.
type Region struct {
	Address uint64 `json:"address"`
	Size    uint64 `json:"size"`
}

// End returns the first address past the region.
func (r Region) End() uint64 {
	return r.Address + r.Size
}

// Contains reports whether addr falls inside the region. An empty region
// contains nothing.
func (r Region) Contains(addr uint64) bool {
	return addr >= r.Address && addr < r.End()
}

// Overlaps reports whether r and other share at least one address.
func (r Region) Overlaps(other Region) bool {
	return r.Address < other.End() && other.Address < r.End()
}

// Bookmark annotates a region with a user-visible name and a free-text
// comment.
type Bookmark struct {
	Region  Region `json:"region"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
}
