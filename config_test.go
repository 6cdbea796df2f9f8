package georelate

import (
	"testing"

	"github.com/go-ini/ini"
)

func loadTestConfig(t *testing.T) (*ini.File, error) {
	t.Helper()
	return ini.Load([]byte(sampleConfig))
}

func loadTestConfigFromString(t *testing.T, s string) (*ini.File, error) {
	t.Helper()
	return ini.Load([]byte(s))
}

const sampleConfig = `
[states]
path = /data/states.wkt
filetype = WKT
description = state
wktcolidx = 0
namecolidx = 1
othercolidx = 2
documenttype = PARAGRAPHS

[rivers]
path = /data/rivers.wkt
filetype = WKT
description = river
wktcolidx = 0
namecolidx = 1
`

func TestLoadDatasetStatementFull(t *testing.T) {
	cfg, err := loadTestConfig(t)
	if err != nil {
		t.Fatal(err)
	}
	stmt, err := LoadDatasetStatement(cfg, "states")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stmt.Path != "/data/states.wkt" || stmt.Description != "state" {
		t.Errorf("unexpected statement: %+v", stmt)
	}
	if stmt.OtherColIdx != 2 {
		t.Errorf("othercolidx = %d, want 2", stmt.OtherColIdx)
	}
	if stmt.DocType != DocParagraphs {
		t.Errorf("doctype = %v, want DocParagraphs", stmt.DocType)
	}
}

func TestLoadDatasetStatementOptionalKeysDefault(t *testing.T) {
	cfg, err := loadTestConfig(t)
	if err != nil {
		t.Fatal(err)
	}
	stmt, err := LoadDatasetStatement(cfg, "rivers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stmt.OtherColIdx != -1 {
		t.Errorf("othercolidx = %d, want -1 when absent", stmt.OtherColIdx)
	}
	if stmt.DocType != DocSentences {
		t.Errorf("doctype = %v, want DocSentences default", stmt.DocType)
	}
}

func TestLoadDatasetStatementMissingSection(t *testing.T) {
	cfg, err := loadTestConfig(t)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDatasetStatement(cfg, "lakes"); err == nil {
		t.Fatal("expected an error for a missing section")
	}
}

func TestLoadDatasetStatementMissingRequiredKey(t *testing.T) {
	cfg, err := loadTestConfigFromString(t, `
[broken]
filetype = WKT
description = broken
wktcolidx = 0
namecolidx = 1
`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDatasetStatement(cfg, "broken"); err == nil {
		t.Fatal("expected an error for a missing 'path' key")
	}
}

func TestParseDocType(t *testing.T) {
	cases := map[string]DocumentType{
		"":                      DocSentences,
		"SENTENCES":             DocSentences,
		"paragraphs":            DocParagraphs,
		"PARAGRAPHS_COMPRESSED": DocParagraphsCompressed,
	}
	for input, want := range cases {
		got, err := parseDocType(input)
		if err != nil {
			t.Errorf("parseDocType(%q): unexpected error %v", input, err)
		}
		if got != want {
			t.Errorf("parseDocType(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := parseDocType("nonsense"); err == nil {
		t.Error("expected an error for an unrecognized document type")
	}
}

func TestParseFiletype(t *testing.T) {
	if _, err := parseFiletype("garbage"); err == nil {
		t.Error("expected an error for an unrecognized filetype")
	}
	if ft, err := parseFiletype("csv"); err != nil || ft != filetypeCSV {
		t.Errorf("parseFiletype(csv) = %v, %v", ft, err)
	}
}
