package urlpath

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"src/md/./../../README.md":      "README.md",
		"./README.md":                   "README.md",
		"md/more/../README.md":          "md/README.md",
		"md/../README.md":               "README.md",
		"/a/b/../c":                     "/a/c",
		"/home/user/md/../../README.md": "/home/README.md",
		"a//b///c":                      "a/b/c",
		"/a//b/./c":                     "/a/b/c",
		"/../a":                         "/a",
		"/a/../../b":                    "/b",
		"../../x":                       "../../x",
		"a/../..":                       "..",
		"":                              ".",
		".":                             ".",
		"/":                             "/",
		"//":                            "/",
		"a/b/":                          "a/b/",
		"/a/b/":                         "/a/b/",
		"x/..":                          ".",
		"x/../":                         ".",
		"/..":                           "/",
	}

	for input, expected := range cases {
		if got := Normalize(input); got != expected {
			t.Fatalf("Normalize(%q) expected %q, got %q", input, expected, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "/", ".", "..", "../..", "a/../..", "/a/b/../c/",
		"a//b/", "./x/./y", "src/md/./../../README.md", "x/../",
	}

	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize(%q) not idempotent: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizeCanonicalNoop(t *testing.T) {
	inputs := []string{"a", "a/b", "/a/b", "/a/b/", "README.md", "/", "."}

	for _, input := range inputs {
		if got := Normalize(input); got != input {
			t.Fatalf("Normalize(%q) changed canonical input to %q", input, got)
		}
	}
}

func TestNormalizeAbsoluteNeverAscends(t *testing.T) {
	inputs := []string{"/..", "/../..", "/../a/../../b", "/a/../../../c/", "/a/b/../../../.."}

	for _, input := range inputs {
		got := Normalize(input)
		for _, seg := range strings.Split(got, "/") {
			if seg == ".." {
				t.Fatalf("Normalize(%q) = %q still ascends past root", input, got)
			}
		}
	}
}

func TestNormalizeRelativeAscensionPreserved(t *testing.T) {
	got := Normalize("../../a/../../x")
	if got != "../../../x" {
		t.Fatalf("expected ../../../x, got %q", got)
	}
}

func TestPathNormalize(t *testing.T) {
	p := New("src/md/./../../README.md")
	if got := p.Normalize(); got != "README.md" {
		t.Fatalf("expected README.md, got %q", got)
	}
	if got := p.Normalize(); got != "README.md" {
		t.Fatalf("expected stable result on second call, got %q", got)
	}
	if p.String() != "src/md/./../../README.md" {
		t.Fatalf("expected raw string to be kept, got %q", p.String())
	}
}

func TestPathExternal(t *testing.T) {
	raw := "https://raw.githubusercontent.com/ivanceras/svgbob/master/TODO.md"
	p := New(raw)

	if !p.IsExternal() {
		t.Fatal("expected external path")
	}
	if p.IsAbsolute() {
		t.Fatal("expected external path to not be absolute")
	}
	if got := p.Normalize(); got != raw {
		t.Fatalf("expected external path verbatim, got %q", got)
	}
	if _, ok := p.Parent(); ok {
		t.Fatal("expected no parent for external path")
	}
	if _, ok := p.Last(); ok {
		t.Fatal("expected no last segment for external path")
	}
}

func TestPathAbsolute(t *testing.T) {
	if !New("/a/b").IsAbsolute() {
		t.Fatal("expected /a/b to be absolute")
	}
	if New("a/b").IsAbsolute() {
		t.Fatal("expected a/b to be relative")
	}
}

func TestPathParentLast(t *testing.T) {
	p := New("/home/user/../me/file.txt")

	parent, ok := p.Parent()
	if !ok || parent != "/home/me" {
		t.Fatalf("expected parent /home/me, got %q ok=%v", parent, ok)
	}
	last, ok := p.Last()
	if !ok || last != "file.txt" {
		t.Fatalf("expected last file.txt, got %q ok=%v", last, ok)
	}

	p = New("md/../README.md")
	if _, ok := p.Parent(); ok {
		t.Fatal("expected no parent after resolution")
	}
	last, ok = p.Last()
	if !ok || last != "README.md" {
		t.Fatalf("expected last README.md, got %q ok=%v", last, ok)
	}

	p = New("/")
	if _, ok := p.Parent(); ok {
		t.Fatal("expected no parent for root")
	}
	if _, ok := p.Last(); ok {
		t.Fatal("expected no last segment for root")
	}
}
