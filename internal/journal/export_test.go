package journal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/vibe/internal/mood"
)

func sampleEntries() []Entry {
	return []Entry{
		{ID: "2", Category: mood.Custom, Label: "inspired", Emoji: mood.CustomEmoji, Note: "new project", Timestamp: time.Date(2025, 11, 21, 18, 30, 0, 0, time.UTC)},
		{ID: "1", Category: mood.Calm, Label: "serene", Emoji: "😌", Timestamp: time.Date(2025, 11, 20, 7, 5, 0, 500, time.UTC)},
	}
}

func TestExportJSONMatchesStoredSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleEntries(), FormatJSON); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []map[string]any{
		{"id": "2", "category": "custom", "label": "inspired", "emoji": "✨", "note": "new project", "timestamp": "2025-11-21T18:30:00Z"},
		{"id": "1", "category": "calm", "label": "serene", "emoji": "😌", "timestamp": "2025-11-20T07:05:00.0000005Z"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("export mismatch (-want +got):\n%s", diff)
	}

	entries, skipped, err := decode(buf.Bytes())
	if err != nil || len(skipped) != 0 {
		t.Fatalf("decode exported JSON: err=%v skipped=%v", err, skipped)
	}
	if diff := cmp.Diff(sampleEntries(), entries); diff != "" {
		t.Fatalf("decoded export mismatch (-want +got):\n%s", diff)
	}
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleEntries(), FormatYAML); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "- id: \"2\"\n") {
		t.Fatalf("unexpected yaml prefix: %q", buf.String())
	}

	var got []record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if len(got) != 2 || got[0].Category != "custom" || got[1].Note != "" {
		t.Fatalf("yaml records = %+v", got)
	}
}

func TestExportMarkdownGroupsByDay(t *testing.T) {
	entries := sampleEntries()
	third := entries[0]
	third.ID = "3"
	third.Category = mood.Happy
	third.Label = "joyful"
	third.Emoji = "😊"
	third.Note = ""
	third.Timestamp = third.Timestamp.Add(time.Minute)
	entries = append([]Entry{third}, entries...)

	var buf bytes.Buffer
	if err := Export(&buf, entries, FormatMarkdown); err != nil {
		t.Fatalf("Export: %v", err)
	}

	day := func(e Entry) string { return e.Timestamp.Local().Format("## 2006-01-02") }
	clock := func(e Entry) string { return e.Timestamp.Local().Format("15:04") }
	want := strings.Join([]string{
		day(entries[0]),
		"- [" + clock(entries[0]) + "] 😊 joyful (happy)",
		"- [" + clock(entries[1]) + "] ✨ inspired (custom)",
		"  > new project",
		"",
		day(entries[2]),
		"- [" + clock(entries[2]) + "] 😌 serene (calm)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yaml": FormatYAML, "yml": FormatYAML, "md": FormatMarkdown, "Markdown": FormatMarkdown}
	for input, want := range cases {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v, want %q", input, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("ParseFormat(xml) succeeded, want error")
	}
}
