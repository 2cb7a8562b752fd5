package render

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"media-browser/internal/library"
)

func newRenderer(t *testing.T) *HTML {
	t.Helper()
	h, err := NewHTML()
	if err != nil {
		t.Fatalf("NewHTML() error = %v", err)
	}
	return h
}

func parse(t *testing.T, buf *bytes.Buffer) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(buf)
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

func TestEscapePath(t *testing.T) {
	tests := map[string]string{
		"":                     "",
		"show":                 "show",
		"show/ep1.mp4":         "show/ep1.mp4",
		"Season 1/ep #1.mp4":   "Season%201/ep%20%231.mp4",
		"a?b/c%d":              "a%3Fb/c%25d",
		"Amélie/Amélie.fr.vtt": "Am%C3%A9lie/Am%C3%A9lie.fr.vtt",
	}
	for in, want := range tests {
		if got := escapePath(in); got != want {
			t.Errorf("escapePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewListingPage(t *testing.T) {
	page := NewListingPage(&library.Listing{
		Path:        "show/season 1",
		Parent:      "show",
		HasParent:   true,
		Directories: []string{"show/season 1/extras"},
		Files:       []string{"show/season 1/ep1.mp4"},
	})

	if page.Title != "Listing /show/season 1" {
		t.Errorf("Title = %q", page.Title)
	}
	if page.ParentURL != "/browse/show" {
		t.Errorf("ParentURL = %q", page.ParentURL)
	}
	if len(page.Directories) != 1 || page.Directories[0] != (Link{Name: "extras", URL: "/browse/show/season%201/extras"}) {
		t.Errorf("Directories = %+v", page.Directories)
	}
	if len(page.Files) != 1 || page.Files[0] != (Link{Name: "ep1.mp4", URL: "/browse/show/season%201/ep1.mp4"}) {
		t.Errorf("Files = %+v", page.Files)
	}
}

func TestNewListingPageRoot(t *testing.T) {
	page := NewListingPage(&library.Listing{Directories: []string{}, Files: []string{"top.mp4"}})
	if page.HasParent || page.ParentURL != "" {
		t.Errorf("root page has parent: %+v", page)
	}
	if page.Title != "Listing /" {
		t.Errorf("Title = %q", page.Title)
	}
}

func TestNewPlayerPage(t *testing.T) {
	t.Run("with subtitles", func(t *testing.T) {
		page := NewPlayerPage(&library.Entry{
			Kind: library.KindFile,
			Path: "show/ep1.mp4",
			Subtitles: []library.SubtitleMatch{
				{Code: "", Label: "Default", Path: "show/ep1.vtt"},
				{Code: "eng", Label: "English", Path: "show/ep1.eng.vtt"},
			},
			Poster: "show/ep1.jpg",
		})

		if page.Title != "Watching /show/ep1.mp4 (with subtitles)" {
			t.Errorf("Title = %q", page.Title)
		}
		if page.MediaURL != "/media/show/ep1.mp4" || page.MimeType != "video/mp4" {
			t.Errorf("media = %q %q", page.MediaURL, page.MimeType)
		}
		if page.ScriptURL != "/static/subtitles.js" {
			t.Errorf("ScriptURL = %q", page.ScriptURL)
		}
		if page.PosterURL != "/media/show/ep1.jpg" {
			t.Errorf("PosterURL = %q", page.PosterURL)
		}
		if page.ParentURL != "/browse/show" {
			t.Errorf("ParentURL = %q", page.ParentURL)
		}
		want := []Track{
			{URL: "/media/show/ep1.vtt", Label: "Default", SrcLang: "", Default: true},
			{URL: "/media/show/ep1.eng.vtt", Label: "English", SrcLang: "eng"},
		}
		if len(page.Tracks) != len(want) {
			t.Fatalf("Tracks = %+v", page.Tracks)
		}
		for i := range want {
			if page.Tracks[i] != want[i] {
				t.Errorf("Tracks[%d] = %+v, want %+v", i, page.Tracks[i], want[i])
			}
		}
	})

	t.Run("without subtitles at root", func(t *testing.T) {
		page := NewPlayerPage(&library.Entry{Kind: library.KindFile, Path: "ep1.webm", Subtitles: []library.SubtitleMatch{}})
		if page.Title != "Watching /ep1.webm" {
			t.Errorf("Title = %q", page.Title)
		}
		if page.ParentURL != "/browse/" || page.PosterURL != "" || len(page.Tracks) != 0 {
			t.Errorf("page = %+v", page)
		}
	})
}

func TestHTMLListing(t *testing.T) {
	h := newRenderer(t)
	page := NewListingPage(&library.Listing{
		Path:        "movies",
		HasParent:   true,
		Directories: []string{"movies/extras"},
		Files:       []string{"movies/a.mp4", "movies/<b>.mp4"},
	})

	var buf bytes.Buffer
	if err := h.Listing(&buf, page); err != nil {
		t.Fatalf("Listing() error = %v", err)
	}
	raw := buf.String()
	doc := parse(t, &buf)

	if got := doc.Find("title").Text(); got != "Listing /movies" {
		t.Errorf("title = %q", got)
	}
	if href, _ := doc.Find("a.parent").Attr("href"); href != "/browse/" {
		t.Errorf("parent href = %q", href)
	}
	if href, _ := doc.Find("a.directory").Attr("href"); href != "/browse/movies/extras" {
		t.Errorf("directory href = %q", href)
	}

	var names []string
	doc.Find("a.file").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	if strings.Join(names, ",") != "a.mp4,<b>.mp4" {
		t.Errorf("file names = %v", names)
	}
	if strings.Contains(raw, "<b>.mp4") {
		t.Error("file name was not escaped")
	}
}

func TestHTMLListingEmptyRoot(t *testing.T) {
	h := newRenderer(t)
	var buf bytes.Buffer
	if err := h.Listing(&buf, NewListingPage(&library.Listing{Directories: []string{}, Files: []string{}})); err != nil {
		t.Fatalf("Listing() error = %v", err)
	}
	doc := parse(t, &buf)
	if doc.Find("a.parent").Length() != 0 {
		t.Error("root listing rendered a parent link")
	}
	if doc.Find(".empty").Length() != 1 {
		t.Error("empty listing message missing")
	}
}

// Two languages with different formats, no default language.
func TestHTMLPlayerTracks(t *testing.T) {
	h := newRenderer(t)
	page := NewPlayerPage(&library.Entry{
		Kind: library.KindFile,
		Path: "show/ep1.mp4",
		Subtitles: []library.SubtitleMatch{
			{Code: "eng", Label: "English", Path: "show/ep1.eng.vtt"},
			{Code: "fre", Label: "French", Path: "show/ep1.fre.srt"},
		},
	})

	var buf bytes.Buffer
	if err := h.Player(&buf, page); err != nil {
		t.Fatalf("Player() error = %v", err)
	}
	doc := parse(t, &buf)

	if got := doc.Find("title").Text(); got != "Watching /show/ep1.mp4 (with subtitles)" {
		t.Errorf("title = %q", got)
	}
	src := doc.Find("video source")
	if v, _ := src.Attr("src"); v != "/media/show/ep1.mp4" {
		t.Errorf("source src = %q", v)
	}
	if v, _ := src.Attr("type"); v != "video/mp4" {
		t.Errorf("source type = %q", v)
	}
	if _, ok := doc.Find("video").Attr("poster"); ok {
		t.Error("poster attribute rendered without a poster")
	}

	tracks := doc.Find("video track")
	if tracks.Length() != 2 {
		t.Fatalf("tracks = %d, want 2", tracks.Length())
	}
	want := []struct{ src, label, lang string }{
		{"/media/show/ep1.eng.vtt", "English", "eng"},
		{"/media/show/ep1.fre.srt", "French", "fre"},
	}
	tracks.Each(func(i int, s *goquery.Selection) {
		gotSrc, _ := s.Attr("src")
		gotLabel, _ := s.Attr("label")
		gotLang, _ := s.Attr("srclang")
		if gotSrc != want[i].src || gotLabel != want[i].label || gotLang != want[i].lang {
			t.Errorf("track %d = (%q, %q, %q), want %+v", i, gotSrc, gotLabel, gotLang, want[i])
		}
		if _, isDefault := s.Attr("default"); isDefault {
			t.Errorf("track %d marked default", i)
		}
		if kind, _ := s.Attr("kind"); kind != "metadata" {
			t.Errorf("track %d kind = %q, want metadata", i, kind)
		}
		if _, ok := s.Attr("data-subtitles"); !ok {
			t.Errorf("track %d missing data-subtitles", i)
		}
	})

	if src, _ := doc.Find("script").Attr("src"); src != "/static/subtitles.js" {
		t.Errorf("script src = %q, want /static/subtitles.js", src)
	}
}

func TestHTMLPlayerWithoutTracksHasNoScript(t *testing.T) {
	h := newRenderer(t)
	page := NewPlayerPage(&library.Entry{Kind: library.KindFile, Path: "ep1.mp4", Subtitles: []library.SubtitleMatch{}})

	var buf bytes.Buffer
	if err := h.Player(&buf, page); err != nil {
		t.Fatalf("Player() error = %v", err)
	}
	if n := parse(t, &buf).Find("script").Length(); n != 0 {
		t.Errorf("scripts = %d, want 0", n)
	}
}

func TestStaticFS(t *testing.T) {
	assets, err := StaticFS()
	if err != nil {
		t.Fatalf("StaticFS() error = %v", err)
	}
	data, err := fs.ReadFile(assets, SubtitleScript)
	if err != nil {
		t.Fatalf("failed to read %s: %v", SubtitleScript, err)
	}
	for _, want := range []string{"data-subtitles", "-->", "WEBVTT"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("%s does not handle %q", SubtitleScript, want)
		}
	}
}

func TestHTMLPlayerDefaultTrackAndPoster(t *testing.T) {
	h := newRenderer(t)
	page := NewPlayerPage(&library.Entry{
		Kind:      library.KindFile,
		Path:      "ep1.mp4",
		Subtitles: []library.SubtitleMatch{{Code: "", Label: "Default", Path: "ep1.vtt"}},
		Poster:    "ep1.png",
	})

	var buf bytes.Buffer
	if err := h.Player(&buf, page); err != nil {
		t.Fatalf("Player() error = %v", err)
	}
	doc := parse(t, &buf)

	track := doc.Find("video track")
	if _, ok := track.Attr("srclang"); ok {
		t.Error("default track carries srclang")
	}
	if _, ok := track.Attr("default"); !ok {
		t.Error("default track not marked default")
	}
	if poster, _ := doc.Find("video").Attr("poster"); poster != "/media/ep1.png" {
		t.Errorf("poster = %q", poster)
	}
}
