package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"qa-insights-go/internal/processor"
	"qa-insights-go/internal/types"
)

// Transcript is one un-analyzed call read from a workbook.
type Transcript struct {
	FileName string
	Text     string
	AudioURL string
}

// Seed is what a dataset file contributes at startup: records already
// analyzed, transcripts still to analyze, or both.
type Seed struct {
	Results     []types.ResultItem
	Transcripts []Transcript
}

// Load reads a seed file, picking the format from its extension:
// .json holds analyzed ResultItems, .xlsx holds raw transcripts.
func Load(path string) (Seed, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		items, err := LoadResults(path)
		return Seed{Results: items}, err
	case ".xlsx":
		trs, err := LoadTranscripts(path)
		return Seed{Transcripts: trs}, err
	default:
		return Seed{}, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

// LoadResults decodes a JSON array of ResultItems. Items saved without a
// content hash get one from their transcript, or from the file name when
// the transcript was not saved either.
func LoadResults(path string) ([]types.ResultItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	var items []types.ResultItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	for i := range items {
		if items[i].ContentHash != "" {
			continue
		}
		src := items[i].TranscriptContent
		if src == "" {
			src = items[i].FileName
		}
		items[i].ContentHash = processor.ContentHash(src)
	}
	return items, nil
}

// LoadTranscripts reads the first sheet of a workbook, auto-detecting the
// transcript, file name and audio columns by header heuristics.
// Rows with a blank transcript are skipped.
func LoadTranscripts(path string) ([]Transcript, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	textIdx, nameIdx, audioIdx := -1, -1, -1
	nameRank := 0
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "transcript") || strings.Contains(l, "text") || strings.Contains(l, "dialogue"):
			if textIdx == -1 {
				textIdx = i
			}
		case strings.Contains(l, "audio") || strings.Contains(l, "recording") || strings.Contains(l, "url"):
			if audioIdx == -1 {
				audioIdx = i
			}
		default:
			// a "file" column beats a call id, which beats any other "name"
			if r := fileNameRank(l); r > nameRank {
				nameIdx, nameRank = i, r
			}
		}
	}
	if textIdx == -1 {
		return nil, fmt.Errorf("no transcript column in %q", sheets[0])
	}

	var out []Transcript
	for i, r := range rows[1:] {
		t := Transcript{Text: cell(r, textIdx), FileName: cell(r, nameIdx), AudioURL: cell(r, audioIdx)}
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		if t.FileName == "" {
			t.FileName = fmt.Sprintf("%s-row-%d.txt", sheets[0], i+2)
		}
		out = append(out, t)
	}
	return out, nil
}

func fileNameRank(header string) int {
	switch {
	case strings.Contains(header, "file"):
		return 3
	case strings.Contains(header, "call id") || strings.Contains(header, "callid"):
		return 2
	case strings.Contains(header, "name"):
		return 1
	}
	return 0
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
