package output

import (
	"encoding/xml"
	"fmt"
	"time"
)

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category,omitempty"`
	GUID        string   `xml:"guid"`
	PubDate     string   `xml:"pubDate,omitempty"`
}

// Feed describes an RSS channel.
type Feed struct {
	Title       string
	Link        string
	Description string
	Language    string
	BuildDate   time.Time
	Items       []FeedItem
}

// FeedItem is one entry of a feed.
type FeedItem struct {
	Title       string
	Link        string
	Description string
	Author      string
	Categories  []string
	Published   time.Time
}

// GenerateFeed renders an RSS 2.0 document. Items without a publish time
// carry no pubDate.
func GenerateFeed(f Feed) (string, error) {
	channel := rssChannel{
		Title:         f.Title,
		Link:          f.Link,
		Description:   f.Description,
		Language:      f.Language,
		LastBuildDate: f.BuildDate.UTC().Format(time.RFC1123Z),
	}
	for _, it := range f.Items {
		item := rssItem{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			Author:      it.Author,
			Categories:  it.Categories,
			GUID:        it.Link,
		}
		if !it.Published.IsZero() {
			item.PubDate = it.Published.UTC().Format(time.RFC1123Z)
		}
		channel.Items = append(channel.Items, item)
	}

	data, err := xml.MarshalIndent(rssDoc{Version: "2.0", Channel: channel}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling feed: %w", err)
	}
	return xml.Header + string(data) + "\n", nil
}
