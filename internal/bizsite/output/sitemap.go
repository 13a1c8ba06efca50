// Package output generates the non-HTML artifacts of an export: sitemap,
// robots, search index, feed, llms.txt and web manifest.
package output

import (
	"encoding/xml"
	"fmt"
)

// Fixed sitemap priorities per page category.
const (
	PriorityHome     = "1.0"
	PriorityServices = "0.9"
	PriorityAbout    = "0.8"
	PriorityContact  = "0.8"
	PriorityService  = "0.8"
	PriorityLocation = "0.8"
	PriorityBlog     = "0.7"
	PriorityPost     = "0.6"
	PriorityCustom   = "0.5"
)

// SitemapEntry represents a single URL in the sitemap.
type SitemapEntry struct {
	Loc        string
	Lastmod    string
	Priority   string
	ChangeFreq string
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	Lastmod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	XMLNS    string         `xml:"xmlns,attr"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc     string `xml:"loc"`
	Lastmod string `xml:"lastmod,omitempty"`
}

// SitemapFile is a filename + content pair.
type SitemapFile struct {
	Filename string
	Content  string
}

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// GenerateSitemapFiles generates sitemap XML files, splitting at maxPerFile
// URLs. A split set is led by a sitemap.xml index.
func GenerateSitemapFiles(entries []SitemapEntry, rootURL string, maxPerFile int) ([]SitemapFile, error) {
	if maxPerFile <= 0 {
		maxPerFile = 50000
	}

	if len(entries) <= maxPerFile {
		content, err := GenerateSitemap(entries)
		if err != nil {
			return nil, err
		}
		return []SitemapFile{{Filename: "sitemap.xml", Content: content}}, nil
	}

	var files []SitemapFile
	var indexEntries []sitemapEntry
	lastmod := entries[0].Lastmod

	for i, chunk := range chunkEntries(entries, maxPerFile) {
		filename := fmt.Sprintf("sitemap-%d.xml", i+1)
		content, err := GenerateSitemap(chunk)
		if err != nil {
			return nil, err
		}
		files = append(files, SitemapFile{Filename: filename, Content: content})
		indexEntries = append(indexEntries, sitemapEntry{
			Loc:     fmt.Sprintf("%s/%s", rootURL, filename),
			Lastmod: lastmod,
		})
	}

	data, err := xml.MarshalIndent(sitemapIndex{XMLNS: sitemapNS, Sitemaps: indexEntries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling sitemap index: %w", err)
	}
	index := SitemapFile{Filename: "sitemap.xml", Content: xml.Header + string(data) + "\n"}
	return append([]SitemapFile{index}, files...), nil
}

// GenerateSitemap renders one urlset document.
func GenerateSitemap(entries []SitemapEntry) (string, error) {
	us := urlSet{XMLNS: sitemapNS}
	for _, e := range entries {
		us.URLs = append(us.URLs, urlEntry{
			Loc:        e.Loc,
			Lastmod:    e.Lastmod,
			Priority:   e.Priority,
			ChangeFreq: e.ChangeFreq,
		})
	}

	data, err := xml.MarshalIndent(us, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling sitemap: %w", err)
	}
	return xml.Header + string(data) + "\n", nil
}

func chunkEntries(entries []SitemapEntry, size int) [][]SitemapEntry {
	var chunks [][]SitemapEntry
	for i := 0; i < len(entries); i += size {
		end := i + size
		if end > len(entries) {
			end = len(entries)
		}
		chunks = append(chunks, entries[i:end])
	}
	return chunks
}
