package library

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"media-browser/internal/mediatypes"
)

func TestListSubdirectoryWithParent(t *testing.T) {
	root := newTestRoot(t,
		"movies/a.mp4",
		"movies/b.txt",
		"movies/.hidden.mp4",
		"movies/extras/",
	)

	listing, err := List(filepath.Join(root, "movies"), root, mediatypes.DefaultMediaExtensions())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if want := []string{"movies/extras"}; !reflect.DeepEqual(listing.Directories, want) {
		t.Errorf("Directories = %v, want %v", listing.Directories, want)
	}
	if want := []string{"movies/a.mp4"}; !reflect.DeepEqual(listing.Files, want) {
		t.Errorf("Files = %v, want %v", listing.Files, want)
	}
	if listing.Path != "movies" || !listing.HasParent || listing.Parent != "" {
		t.Errorf("navigation = (%q, %v, %q), want (movies, true, \"\")", listing.Path, listing.HasParent, listing.Parent)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	root := newTestRoot(t,
		"lib/zeta.webm",
		"lib/Alpha.mp4",
		"lib/beta.mp4",
		"lib/upper.MP4",
		"lib/notes.txt",
		"lib/archive.mp4.part",
		"lib/.git/",
		"lib/.cache.webm",
		"lib/season 2/",
		"lib/Season 1/",
		"lib/extras/",
	)

	listing, err := List(filepath.Join(root, "lib"), root, mediatypes.DefaultMediaExtensions())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	wantDirs := []string{"lib/Season 1", "lib/extras", "lib/season 2"}
	wantFiles := []string{"lib/Alpha.mp4", "lib/beta.mp4", "lib/zeta.webm"}
	if !reflect.DeepEqual(listing.Directories, wantDirs) {
		t.Errorf("Directories = %v, want %v", listing.Directories, wantDirs)
	}
	if !reflect.DeepEqual(listing.Files, wantFiles) {
		t.Errorf("Files = %v, want %v", listing.Files, wantFiles)
	}

	for _, seq := range [][]string{listing.Directories, listing.Files} {
		if !sort.StringsAreSorted(seq) {
			t.Errorf("sequence not ascending: %v", seq)
		}
		for _, p := range seq {
			if strings.HasPrefix(filepath.Base(p), ".") {
				t.Errorf("hidden entry listed: %s", p)
			}
		}
	}
}

func TestListRootAndNested(t *testing.T) {
	root := newTestRoot(t, "top.mp4", "show/season1/ep1.mp4")

	t.Run("root", func(t *testing.T) {
		listing, err := List(root, root, mediatypes.DefaultMediaExtensions())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if listing.Path != "" || listing.HasParent {
			t.Errorf("root listing path = %q, hasParent = %v", listing.Path, listing.HasParent)
		}
		if !reflect.DeepEqual(listing.Directories, []string{"show"}) || !reflect.DeepEqual(listing.Files, []string{"top.mp4"}) {
			t.Errorf("root listing = %+v", listing)
		}
	})

	t.Run("nested", func(t *testing.T) {
		listing, err := List(filepath.Join(root, "show", "season1"), root, mediatypes.DefaultMediaExtensions())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if listing.Parent != "show" || !listing.HasParent {
			t.Errorf("Parent = %q, HasParent = %v", listing.Parent, listing.HasParent)
		}
		if !reflect.DeepEqual(listing.Files, []string{"show/season1/ep1.mp4"}) {
			t.Errorf("Files = %v", listing.Files)
		}
	})
}

func TestListEmptyDirectory(t *testing.T) {
	root := newTestRoot(t, "empty/", "onlytext/readme.txt")

	for _, dir := range []string{"empty", "onlytext"} {
		listing, err := List(filepath.Join(root, dir), root, mediatypes.DefaultMediaExtensions())
		if err != nil {
			t.Fatalf("List(%s) error = %v", dir, err)
		}
		if listing.Directories == nil || listing.Files == nil {
			t.Errorf("List(%s) returned nil slices", dir)
		}
		if len(listing.Directories) != 0 || len(listing.Files) != 0 {
			t.Errorf("List(%s) = %+v, want empty", dir, listing)
		}
	}
}

func TestListSymlinkedChildren(t *testing.T) {
	root := newTestRoot(t, "real/", "media/ep.mp4")
	symlink(t, filepath.Join(root, "real"), filepath.Join(root, "media", "linked"))
	symlink(t, filepath.Join(root, "missing"), filepath.Join(root, "media", "dangling.mp4"))

	listing, err := List(filepath.Join(root, "media"), root, mediatypes.DefaultMediaExtensions())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !reflect.DeepEqual(listing.Directories, []string{"media/linked"}) {
		t.Errorf("Directories = %v, want [media/linked]", listing.Directories)
	}
	if !reflect.DeepEqual(listing.Files, []string{"media/dangling.mp4", "media/ep.mp4"}) {
		t.Errorf("Files = %v", listing.Files)
	}
}

func TestListCustomMediaExtensions(t *testing.T) {
	root := newTestRoot(t, "a.mkv", "b.mp4")

	listing, err := List(root, root, mediatypes.NewExtensionSet("mkv"))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !reflect.DeepEqual(listing.Files, []string{"a.mkv"}) {
		t.Errorf("Files = %v, want [a.mkv]", listing.Files)
	}
}

func TestListUnreadable(t *testing.T) {
	root := newTestRoot(t, "locked/a.mp4")

	t.Run("missing directory", func(t *testing.T) {
		_, err := List(filepath.Join(root, "gone"), root, mediatypes.DefaultMediaExtensions())
		if !errors.Is(err, ErrUnreadableDirectory) {
			t.Errorf("error = %v, want ErrUnreadableDirectory", err)
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root ignores directory permissions")
		}
		locked := filepath.Join(root, "locked")
		if err := os.Chmod(locked, 0o000); err != nil {
			t.Fatalf("chmod: %v", err)
		}
		t.Cleanup(func() { os.Chmod(locked, 0o755) })

		_, err := List(locked, root, mediatypes.DefaultMediaExtensions())
		if !errors.Is(err, ErrUnreadableDirectory) {
			t.Errorf("error = %v, want ErrUnreadableDirectory", err)
		}
	})
}
