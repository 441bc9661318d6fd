package site

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/ziadkadry99/deepdive/internal/content"
)

// SearchEntry represents a single searchable page of the export.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

const maxContent = 2000

func buildSearchEntry(path string, tab content.Tab, sec content.Section) SearchEntry {
	text := content.PlainText(sec)

	entry := SearchEntry{
		Path:  path,
		Title: tab.Label,
	}

	// The first line is the section header; the summary is the first prose
	// line after it.
	lines := strings.Split(text, "\n")
	for _, l := range lines[1:] {
		l = strings.TrimSpace(l)
		if l != "" && !strings.HasPrefix(l, "#") {
			entry.Summary = l
			break
		}
	}

	body := strings.Join(strings.Fields(text), " ")
	if len(body) > maxContent {
		body = truncate(body, maxContent)
	}
	entry.Content = body
	return entry
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	for n > 0 && n < len(s) && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// ReadSearchIndex loads a search index written by WriteSearchIndex.
func ReadSearchIndex(path string) ([]SearchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Search ranks entries by how many query terms they contain, title matches
// counting double. Entries matching no term are dropped.
func Search(entries []SearchEntry, query string, limit int) []SearchEntry {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		entry SearchEntry
		score int
	}
	var hits []scored
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		body := strings.ToLower(e.Content)
		score := 0
		for _, t := range terms {
			if strings.Contains(title, t) {
				score += 2
			}
			if strings.Contains(body, t) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{e, score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]SearchEntry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}
