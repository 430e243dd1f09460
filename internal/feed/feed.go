// Package feed serializes the digest corpus into syndication formats: an
// RSS 2.0 feed and an XML sitemap. Both are pure projections of already
// parsed posts; nothing here re-reads the store.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/aitechdigest/digest/internal/content"
)

// Site carries the publication identity stamped into syndication output.
type Site struct {
	BaseURL     string
	Title       string
	Description string
	Language    string
}

// PostURL returns the canonical URL for a digest post.
func (s Site) PostURL(slug string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/digest/" + slug
}

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	AtomLink    atomLink  `xml:"atom:link"`
	Items       []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        guid   `xml:"guid"`
	PubDate     string `xml:"pubDate,omitempty"`
	Description string `xml:"description"`
}

type guid struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// RSS renders the corpus as an RSS 2.0 feed, one item per post in corpus
// order. The post URL doubles as the permalink GUID.
func RSS(site Site, posts []*content.DigestPost) ([]byte, error) {
	ch := channel{
		Title:       site.Title,
		Link:        site.BaseURL,
		Description: site.Description,
		Language:    site.Language,
		AtomLink: atomLink{
			Href: strings.TrimRight(site.BaseURL, "/") + "/feed.xml",
			Rel:  "self",
			Type: "application/rss+xml",
		},
	}
	for _, p := range posts {
		url := site.PostURL(p.Slug)
		ch.Items = append(ch.Items, rssItem{
			Title:       p.Title,
			Link:        url,
			GUID:        guid{IsPermaLink: "true", Value: url},
			PubDate:     pubDate(p.Date),
			Description: p.Summary,
		})
	}

	out, err := xml.MarshalIndent(rss{Version: "2.0", AtomNS: "http://www.w3.org/2005/Atom", Channel: ch}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling feed: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// pubDate renders an ISO date as an RFC 822 style timestamp at UTC midnight.
// Unparsable dates yield an empty string, which drops the element.
func pubDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.UTC().Format("Mon, 02 Jan 2006 15:04:05") + " GMT"
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders the fixed top-level pages plus one entry per post.
func Sitemap(site Site, posts []*content.DigestPost, now time.Time) ([]byte, error) {
	base := strings.TrimRight(site.BaseURL, "/")
	today := now.UTC().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: base + "/", LastMod: today, ChangeFreq: "weekly", Priority: "1.0"},
		{Loc: base + "/resources", LastMod: today, ChangeFreq: "weekly", Priority: "0.6"},
		{Loc: base + "/about", LastMod: today, ChangeFreq: "monthly", Priority: "0.4"},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:        site.PostURL(p.Slug),
			LastMod:    p.Date,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	out, err := xml.MarshalIndent(urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: urls}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
