package apireport_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ben-polinsky/rushstack/apimodel"
	"github.com/ben-polinsky/rushstack/apireport"
)

func TestWriteDocument_PersistsAndValidates(t *testing.T) {
	fn := &apimodel.Item{
		Name:          "greet",
		Kind:          apimodel.KindFunction,
		SupportedName: true,
		ReleaseTag:    apimodel.ReleasePublic,
		ReturnType:    "void",
		Docs:          apimodel.Docs{Summary: apimodel.Text("Says hello.")},
	}
	path := filepath.Join(t.TempDir(), "out", "example.api.json")

	if err := apireport.New().WriteDocument(path, pkg(fn)); err != nil {
		t.Fatalf("write document: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(data)

	// Key order in the file equals visitation order.
	order := []string{`"kind"`, `"summary"`, `"remarks"`, `"exports"`}
	last := -1
	for _, key := range order {
		i := strings.Index(text, key)
		if i < 0 {
			t.Fatalf("key %s missing from document", key)
		}
		if i < last {
			t.Fatalf("key %s out of order in document", key)
		}
		last = i
	}
	if err := apireport.ValidateFile(path); err != nil {
		t.Fatalf("persisted document should conform: %v", err)
	}
}

func TestWriteDocument_FileRemainsAfterValidationFailure(t *testing.T) {
	// A kind the serializer has no handler for reaches the placeholder
	// handler; the schema rejects the resulting node, after the file has
	// already been persisted.
	odd := &apimodel.Item{
		Name:          "p",
		Kind:          apimodel.KindParameter,
		SupportedName: true,
		ReleaseTag:    apimodel.ReleasePublic,
	}
	path := filepath.Join(t.TempDir(), "odd.api.json")

	err := apireport.New().WriteDocument(path, pkg(odd))
	if err == nil {
		t.Fatalf("expected schema validation to fail")
	}
	if _, ok := apireport.AsIssues(err); !ok {
		t.Fatalf("expected structured issues, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("document must stay on disk for inspection: %v", statErr)
	}
}

func TestWriteDocument_DeterministicAcrossRuns(t *testing.T) {
	mk := func() *apimodel.Item {
		return pkg(
			&apimodel.Item{Name: "b", Kind: apimodel.KindFunction, SupportedName: true, ReleaseTag: apimodel.ReleasePublic},
			&apimodel.Item{Name: "a", Kind: apimodel.KindFunction, SupportedName: true, ReleaseTag: apimodel.ReleaseBeta},
		)
	}
	dir := t.TempDir()
	p1 := filepath.Join(dir, "one.api.json")
	p2 := filepath.Join(dir, "two.api.json")
	if err := apireport.New().WriteDocument(p1, mk()); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := apireport.New().WriteDocument(p2, mk()); err != nil {
		t.Fatalf("second write: %v", err)
	}
	d1, _ := os.ReadFile(p1)
	d2, _ := os.ReadFile(p2)
	if string(d1) != string(d2) {
		t.Fatalf("documents differ across identical runs")
	}
}
