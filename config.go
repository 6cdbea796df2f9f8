package georelate

import (
	"strings"

	"github.com/go-ini/ini"
)

// datasetFiletype names the four raw formats a dataset file may declare
// itself as in the INI config, per spec.md §6. Only the WKT column
// layout is actually parsed by this package; the others are accepted and
// recorded for compatibility but loaded the same way.
type datasetFiletype int

const (
	filetypeWKT datasetFiletype = iota
	filetypeTSV
	filetypeCSV
	filetypeDAT
)

func parseFiletype(s string) (datasetFiletype, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WKT":
		return filetypeWKT, nil
	case "TSV":
		return filetypeTSV, nil
	case "CSV":
		return filetypeCSV, nil
	case "DAT":
		return filetypeDAT, nil
	default:
		return filetypeWKT, newErr(StatusIniError, "invalid filetype %q", s)
	}
}

func parseDocType(s string) (DocumentType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "SENTENCES":
		return DocSentences, nil
	case "PARAGRAPHS":
		return DocParagraphs, nil
	case "PARAGRAPHS_COMPRESSED":
		return DocParagraphsCompressed, nil
	default:
		return DocSentences, newErr(StatusIniError, "invalid documenttype %q", s)
	}
}

// DatasetStatement is one dataset section of the INI config, keyed by
// its nickname. Grounded on original_source/src/parse.cpp's
// loadMetadata, which fetches each field from a boost property_tree by
// "<nickname>.<key>" and treats a missing/malformed key as a fatal
// IniError.
type DatasetStatement struct {
	Nickname    string
	Path        string
	Filetype    datasetFiletype
	Description string
	WKTColIdx   int
	NameColIdx  int
	OtherColIdx int // -1 when absent
	DocType     DocumentType
}

// LoadDatasetStatement reads the [nickname] section of an INI file
// opened with github.com/go-ini/ini, returning an IniError naming the
// first missing or malformed required key.
func LoadDatasetStatement(cfg *ini.File, nickname string) (*DatasetStatement, error) {
	section, err := cfg.GetSection(nickname)
	if err != nil {
		return nil, newErr(StatusIniError, "no section %q in datasets config", nickname)
	}

	stmt := &DatasetStatement{Nickname: nickname, OtherColIdx: -1}

	path := section.Key("path")
	if path.String() == "" {
		return nil, newErr(StatusIniError, "'path' invalid or missing for dataset %s", nickname)
	}
	stmt.Path = path.String()

	filetypeKey := section.Key("filetype")
	if filetypeKey.String() == "" {
		return nil, newErr(StatusIniError, "'filetype' invalid or missing for dataset %s", nickname)
	}
	ft, err := parseFiletype(filetypeKey.String())
	if err != nil {
		return nil, newErr(StatusIniError, "'filetype' invalid or missing for dataset %s: %v", nickname, err)
	}
	stmt.Filetype = ft

	description := section.Key("description")
	if description.String() == "" {
		return nil, newErr(StatusIniError, "'description' invalid or missing for dataset %s", nickname)
	}
	stmt.Description = description.String()

	wktColIdx, err := section.Key("wktcolidx").Int()
	if err != nil {
		return nil, newErr(StatusIniError, "'wktcolidx' invalid or missing for dataset %s", nickname)
	}
	stmt.WKTColIdx = wktColIdx

	nameColIdx, err := section.Key("namecolidx").Int()
	if err != nil {
		return nil, newErr(StatusIniError, "'namecolidx' invalid or missing for dataset %s", nickname)
	}
	stmt.NameColIdx = nameColIdx

	if section.HasKey("othercolidx") {
		otherColIdx, err := section.Key("othercolidx").Int()
		if err != nil {
			return nil, newErr(StatusIniError, "'othercolidx' malformed for dataset %s", nickname)
		}
		stmt.OtherColIdx = otherColIdx
	}

	docType, err := parseDocType(section.Key("documenttype").String())
	if err != nil {
		return nil, newErr(StatusIniError, "'documenttype' invalid for dataset %s: %v", nickname, err)
	}
	stmt.DocType = docType

	return stmt, nil
}

// LoadConfig opens and parses the INI file at path with github.com/go-ini/ini.
func LoadConfig(path string) (*ini.File, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, newErr(StatusIniError, "failed to parse config %s: %v", path, err)
	}
	return cfg, nil
}
