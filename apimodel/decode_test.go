package apimodel_test

import (
	"testing"

	"github.com/ben-polinsky/rushstack/apimodel"
)

const snapshot = `{
  "name": "example-package",
  "kind": "package",
  "supportedName": true,
  "releaseTag": "None",
  "docs": {"summary": [{"kind": "text", "value": "An example."}], "remarks": []},
  "members": [
    {
      "name": "Foo",
      "kind": "class",
      "supportedName": true,
      "releaseTag": "Beta",
      "docs": {"summary": [], "remarks": []},
      "members": [
        {
          "name": "bar",
          "kind": "method",
          "supportedName": true,
          "releaseTag": "Public",
          "accessModifier": "public",
          "returnType": "string",
          "parameters": [{"name": "x", "type": "number", "isOptional": false, "isSpread": false}],
          "decl": {"text": "public bar(x: number): string;"},
          "docs": {"summary": [], "remarks": []}
        }
      ]
    }
  ]
}`

func TestDecodeSnapshot(t *testing.T) {
	root, err := apimodel.DecodeSnapshot([]byte(snapshot))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if root.Kind != apimodel.KindPackage || root.Name != "example-package" {
		t.Fatalf("unexpected root: %s %v", root.Name, root.Kind)
	}
	if len(root.Members) != 1 {
		t.Fatalf("want 1 member, got %d", len(root.Members))
	}
	foo := root.Members[0]
	if foo.Kind != apimodel.KindClass || foo.ReleaseTag != apimodel.ReleaseBeta {
		t.Fatalf("unexpected class item: %v %v", foo.Kind, foo.ReleaseTag)
	}
	bar := foo.Members[0]
	if bar.AccessModifier != apimodel.AccessPublic {
		t.Fatalf("access modifier: %v", bar.AccessModifier)
	}
	if len(bar.Parameters) != 1 || bar.Parameters[0].Type != "number" {
		t.Fatalf("parameters: %+v", bar.Parameters)
	}
}

func TestDecodeSnapshot_RejectsNonPackageRoot(t *testing.T) {
	_, err := apimodel.DecodeSnapshot([]byte(`{"name": "x", "kind": "class", "supportedName": true, "releaseTag": "Public", "docs": {}}`))
	if err == nil {
		t.Fatalf("expected error for non-package root")
	}
}

func TestDecl_TrailingToken(t *testing.T) {
	if got := (apimodel.Decl{Tokens: []string{"Red", "=", "1"}}).TrailingToken(); got != "1" {
		t.Fatalf("trailing token: %q", got)
	}
	if got := (apimodel.Decl{Tokens: []string{"Red"}}).TrailingToken(); got != "" {
		t.Fatalf("single token should degrade to empty, got %q", got)
	}
	if got := (apimodel.Decl{}).TrailingToken(); got != "" {
		t.Fatalf("missing tokens should degrade to empty, got %q", got)
	}
}
