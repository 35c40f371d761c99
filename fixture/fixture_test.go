package fixture

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/chrisuehlinger/flexkit/layout"
)

func TestFixtureCorpus(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.toml")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("No fixtures found under testdata")
	}
	for _, path := range paths {
		t.Run(strings.TrimSuffix(filepath.Base(path), ".toml"), func(t *testing.T) {
			doc, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			tr, root, err := doc.Build()
			if err != nil {
				t.Fatal(err)
			}
			layout.LayoutFlexContainer(layout.NewContext(), tr, root)
			if err := doc.Verify(tr, root); err != nil {
				t.Errorf("%v\nlayout:\n%s", err, tr.Dump(root))
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("width = 100.0\nflex-grow = 1.0\n")
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("Unknown keys should fail the load, got %v", err)
	}
}

func TestBuildRejectsBadKeywords(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"direction", "direction = \"sideways\"\n"},
		{"justify", "justify = \"middle\"\n"},
		{"margin", "margin-left = \"10px\"\n"},
		{"basis", "basis = \"fit\"\n[[child]]\nkind = \"box\"\n"},
		{"kind", "[[child]]\nkind = \"widget\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.doc)
			if err != nil {
				t.Fatalf("Parse should succeed, build should fail: %v", err)
			}
			if _, _, err := doc.Build(); err == nil {
				t.Error("Build should reject the bad keyword")
			}
		})
	}
}

func TestVerifyReportsMismatch(t *testing.T) {
	doc, err := Parse(`
width = 100.0
height = 50.0

[[child]]
kind = "box"
width = 30.0

[[expect]]
path = [0]
x = 99.0
`)
	if err != nil {
		t.Fatal(err)
	}
	tr, root, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}
	layout.LayoutFlexContainer(layout.NewContext(), tr, root)
	if err := doc.Verify(tr, root); err == nil {
		t.Error("Verify should report the wrong x position")
	}
}

func TestVerifyRejectsBadPath(t *testing.T) {
	doc, err := Parse("width = 100.0\n\n[[expect]]\npath = [3]\nx = 0.0\n")
	if err != nil {
		t.Fatal(err)
	}
	tr, root, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Verify(tr, root); err == nil {
		t.Error("Verify should reject a path that resolves to no box")
	}
}

func TestTextNodes(t *testing.T) {
	doc, err := Parse(`
width = 300.0
height = 100.0

[[child]]
kind = "box"

  [[child.child]]
  kind = "text"
  text = "hi"
`)
	if err != nil {
		t.Fatal(err)
	}
	tr, root, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}
	layout.LayoutFlexContainer(layout.NewContext(), tr, root)

	item := tr.Box(root).FirstChild
	if w := tr.Box(item).Dimensions.Content.Width; w != 2*9.6 {
		t.Errorf("Text content should size its item, got width %v", w)
	}
}
