package catalog

import (
	"context"
	"encoding/xml"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/swipefeed/pkg/domain"
)

// RSSProvider reads the catalog from an RSS/Atom feed. Item guid (or link) is the game id, image
// enclosures and the item image become image refs, the first category is the genre.
type RSSProvider struct {
	URL       string
	Timeout   time.Duration
	UserAgent string
}

// Games fetches and parses the feed
func (p RSSProvider) Games(ctx context.Context) ([]domain.Item, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	if p.UserAgent != "" {
		parser.UserAgent = p.UserAgent
	}
	feed, err := parser.ParseURLWithContext(p.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", p.URL, err)
	}

	items := make([]domain.Item, 0, len(feed.Items))
	for _, fi := range feed.Items {
		items = append(items, feedItem(fi))
	}
	return Normalize(items), nil
}

func feedItem(fi *gofeed.Item) domain.Item {
	res := domain.Item{ID: fi.GUID, Title: fi.Title}
	if res.ID == "" {
		res.ID = fi.Link
	}
	if len(fi.Categories) > 0 {
		res.Genre = fi.Categories[0]
	}

	var images []string
	if fi.Image != nil && fi.Image.URL != "" {
		images = append(images, fi.Image.URL)
	}
	for _, enc := range fi.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if enc.Type != "" && !strings.HasPrefix(enc.Type, "image/") {
			continue
		}
		images = append(images, enc.URL)
	}
	for _, img := range images {
		switch {
		case res.PrimaryImageRef == "":
			res.PrimaryImageRef = img
		case img != res.PrimaryImageRef:
			res.SecondaryImageRef = img
			return res
		}
	}
	return res
}

// Generator renders the catalog as RSS 2.0, readable back by RSSProvider
type Generator struct {
	baseURL string
}

// NewGenerator makes a generator for the given public base url
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/")}
}

// GenerateRSS creates an RSS feed of the games
func (g *Generator) GenerateRSS(items []domain.Item) (string, error) {
	rssItems := make([]*rssItem, 0, len(items))
	for _, it := range items {
		ri := &rssItem{Title: it.Title, GUID: it.ID, Link: g.baseURL + "/api/v1/games/" + it.ID + "/stats"}
		if it.Genre != "" {
			ri.Categories = []string{it.Genre}
		}
		for _, ref := range it.ImageRefs() {
			ri.Enclosures = append(ri.Enclosures, &rssEnclosure{URL: ref, Type: imageType(ref), Length: "0"})
		}
		rssItems = append(rssItems, ri)
	}

	feed := &rss{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &rssChannel{
			Title:         "swipefeed games",
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("%d games", len(items)),
			AtomLink:      &atomLink{Href: g.baseURL + "/api/v1/games.rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// imageType guesses enclosure mime type from the url extension
func imageType(ref string) string {
	if u := strings.SplitN(ref, "?", 2)[0]; u != "" {
		if t := mime.TypeByExtension(path.Ext(u)); strings.HasPrefix(t, "image/") {
			return t
		}
	}
	return "image/jpeg"
}
