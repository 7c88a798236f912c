package domain

// Item represents a single game card in the feed. The engine never mutates items,
// the catalog owns them and replaces the whole list on refresh.
type Item struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	PrimaryImageRef   string `json:"primary_image,omitempty"`
	SecondaryImageRef string `json:"secondary_image,omitempty"`
	Genre             string `json:"genre,omitempty"`
}

// ImageRefs returns non-empty media references in prefetch order, primary first
func (i Item) ImageRefs() []string {
	refs := make([]string, 0, 2)
	if i.PrimaryImageRef != "" {
		refs = append(refs, i.PrimaryImageRef)
	}
	if i.SecondaryImageRef != "" && i.SecondaryImageRef != i.PrimaryImageRef {
		refs = append(refs, i.SecondaryImageRef)
	}
	return refs
}

// FeedState is the navigation state owned by the orchestrator
type FeedState struct {
	Items           []Item
	CurrentIndex    int
	IsTransitioning bool
}

// Current returns the item at CurrentIndex, false for an empty feed
func (s FeedState) Current() (Item, bool) {
	if len(s.Items) == 0 || s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Items) {
		return Item{}, false
	}
	return s.Items[s.CurrentIndex], true
}
