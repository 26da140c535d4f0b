package output

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/jethrodaniel/odyssey/internal/engine"
	"github.com/jethrodaniel/odyssey/internal/stats"
)

// ScoreRow is one formula's score for one input.
type ScoreRow struct {
	File    string  `json:"file,omitempty"`
	Formula string  `json:"formula"`
	Score   float64 `json:"score"`
}

// Report is the full analysis of one input.
type Report struct {
	File string `json:"file,omitempty"`
	engine.MultiResult
}

// WriteScores renders score rows. Text output is a tab-aligned table
// with the file column omitted when no row names a file.
func WriteScores(w io.Writer, f Format, rows []ScoreRow) error {
	if f == JSON {
		if rows == nil {
			rows = []ScoreRow{}
		}
		return writeJSON(w, rows)
	}

	withFile := false
	for _, r := range rows {
		if r.File != "" {
			withFile = true
			break
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		if withFile {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.File, r.Formula, FormatScore(r.Score))
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", r.Formula, FormatScore(r.Score))
		}
	}
	return tw.Flush()
}

// WriteReports renders full statistics for each report.
func WriteReports(w io.Writer, f Format, reports []Report) error {
	if f == JSON {
		if reports == nil {
			reports = []Report{}
		}
		return writeJSON(w, reports)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		writeReport(tw, r)
	}
	return tw.Flush()
}

func writeReport(w io.Writer, r Report) {
	if r.File != "" {
		fmt.Fprintf(w, "file\t%s\n", r.File)
	}
	m := r.Stats.Map()
	for _, k := range stats.Fields() {
		fmt.Fprintf(w, "%s\t%v\n", k, m[k])
	}
	fmt.Fprintf(w, "name\t%s\n", r.Name)
	fmt.Fprintf(w, "score\t%s\n", FormatScore(r.Score))

	if len(r.Scores) > 0 {
		names := make([]string, 0, len(r.Scores))
		for n := range r.Scores {
			names = append(names, n)
		}
		sort.Strings(names)
		fmt.Fprintln(w, "scores")
		for _, n := range names {
			fmt.Fprintf(w, "  %s\t%s\n", n, FormatScore(r.Scores[n]))
		}
	}

	if len(r.ScoreBySentence) > 0 {
		fmt.Fprintln(w, "score_by_sentence")
		for _, s := range r.ScoreBySentence {
			fmt.Fprintf(w, "  %s\t%s\n", FormatScore(s.Score), s.Sentence)
		}
	}
}

// FormatScore prints a score with one decimal place.
func FormatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
