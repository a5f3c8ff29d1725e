package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dotcommander/ccfscore/internal/cli"
	"github.com/dotcommander/ccfscore/internal/scoring"
	"github.com/dotcommander/ccfscore/internal/types"
)

// FormatTracks renders the functionality track table
func FormatTracks(w io.Writer, format string) error {
	tracks := scoring.Tracks()

	headers := []string{"Tier", "Sub-tier", "Range", "Track", "Review", "Guidance"}
	rows := make([][]string, len(tracks))
	for i, t := range tracks {
		rows[i] = []string{t.TierLabel, t.SubTier, t.ScoreRange, t.Name, t.ReviewCadence, t.Guidance}
	}

	switch format {
	case types.FormatJSON:
		return writeJSON(w, tracks)
	case types.FormatMarkdown:
		return writeReport("", w, []byte(markdownTable(headers, rows)))
	case types.FormatConsole:
		r := lipgloss.NewRenderer(w)
		t := consoleTable(r, headers, rows).StyleFunc(func(row, col int) lipgloss.Style {
			style := r.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col <= 1 {
				return style.Foreground(TrackColor(tracks[row].DisplayColor))
			}
			return style
		})
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatMobilityScale renders the IMS levels with their labels and CCF points
func FormatMobilityScale(w io.Writer, format string) error {
	levels := scoring.MobilityLevels()

	headers := []string{"IMS", "Level", "Points"}
	rows := make([][]string, len(levels))
	for i, l := range levels {
		rows[i] = []string{strconv.Itoa(l.Value), l.Label, strconv.Itoa(l.Points)}
	}

	switch format {
	case types.FormatJSON:
		return writeJSON(w, levels)
	case types.FormatMarkdown:
		return writeReport("", w, []byte(markdownTable(headers, rows)))
	case types.FormatConsole:
		r := lipgloss.NewRenderer(w)
		t := consoleTable(r, headers, rows).StyleFunc(func(row, col int) lipgloss.Style {
			style := r.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col == 2 {
				return style.Align(lipgloss.Right)
			}
			return style
		})
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Distribution is the workspace overview printed by the summary command
type Distribution struct {
	ProjectRoot string         `json:"project_root"`
	Assessments int            `json:"assessments"`
	Scored      int            `json:"scored"`
	Failed      int            `json:"failed"`
	Bands       map[string]int `json:"bands"`
	Tracks      []TrackCount   `json:"tracks"`
	Untracked   int            `json:"untracked"`
	Top         []RankedScore  `json:"top"`
}

// TrackCount is the number of assessments on one track
type TrackCount struct {
	SubTier string `json:"sub_tier"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

// RankedScore is one entry of the highest-scoring list
type RankedScore struct {
	Name    string `json:"name"`
	File    string `json:"file"`
	Total   int    `json:"total"`
	Band    string `json:"band"`
	SubTier string `json:"sub_tier,omitempty"`
}

// NewDistribution builds the overview, keeping at most limit ranked
// assessments (all of them when limit <= 0).
func NewDistribution(summary *cli.Summary, limit int) Distribution {
	d := Distribution{
		ProjectRoot: summary.ProjectRoot,
		Assessments: summary.TotalAssessments,
		Scored:      summary.ScoredCount,
		Failed:      summary.FailedCount,
		Bands:       bandCounts(summary),
		Untracked:   summary.UntrackedCount,
	}
	for _, t := range scoring.Tracks() {
		d.Tracks = append(d.Tracks, TrackCount{SubTier: t.SubTier, Name: t.Name, Count: summary.TrackCounts[t.SubTier]})
	}

	ranked := cli.Ranked(summary)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for _, r := range ranked {
		entry := RankedScore{
			Name:  r.Label(),
			File:  r.File,
			Total: r.Evaluation.Result.Total,
			Band:  r.Evaluation.Classification.Band.String(),
		}
		if r.Evaluation.Track != nil {
			entry.SubTier = r.Evaluation.Track.SubTier
		}
		d.Top = append(d.Top, entry)
	}
	return d
}

// FormatDistribution renders the workspace overview
func FormatDistribution(w io.Writer, d Distribution, format string) error {
	bandRows := make([][]string, 0, len(scoring.Bands()))
	for _, b := range scoring.Bands() {
		bandRows = append(bandRows, []string{b.String(), strconv.Itoa(d.Bands[b.String()])})
	}
	trackRows := make([][]string, 0, len(d.Tracks)+1)
	for _, t := range d.Tracks {
		trackRows = append(trackRows, []string{t.SubTier, t.Name, strconv.Itoa(t.Count)})
	}
	trackRows = append(trackRows, []string{"-", "no track", strconv.Itoa(d.Untracked)})
	topRows := make([][]string, 0, len(d.Top))
	for _, r := range d.Top {
		topRows = append(topRows, []string{r.Name, strconv.Itoa(r.Total), r.Band, r.SubTier, r.File})
	}

	bandHeaders := []string{"Band", "Assessments"}
	trackHeaders := []string{"Sub-tier", "Track", "Assessments"}
	topHeaders := []string{"Assessment", "Total", "Band", "Track", "File"}

	switch format {
	case types.FormatJSON:
		return writeJSON(w, d)
	case types.FormatMarkdown:
		var b strings.Builder
		b.WriteString("# CCF Distribution\n\n")
		fmt.Fprintf(&b, "**Project:** %s\n\n", d.ProjectRoot)
		fmt.Fprintf(&b, "%d assessments, %d scored, %d failed\n\n", d.Assessments, d.Scored, d.Failed)
		b.WriteString("## Bands\n\n" + markdownTable(bandHeaders, bandRows) + "\n")
		b.WriteString("## Tracks\n\n" + markdownTable(trackHeaders, trackRows) + "\n")
		b.WriteString("## Highest scores\n\n" + markdownTable(topHeaders, topRows))
		return writeReport("", w, []byte(b.String()))
	case types.FormatConsole:
		r := lipgloss.NewRenderer(w)
		bold := r.NewStyle().Bold(true)
		fmt.Fprintf(w, "%d assessments, %d scored, %d failed\n\n", d.Assessments, d.Scored, d.Failed)
		fmt.Fprintln(w, bold.Render("Bands"))
		fmt.Fprintln(w, consoleTable(r, bandHeaders, bandRows).StyleFunc(func(row, col int) lipgloss.Style {
			style := r.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col == 0 {
				return style.Foreground(BandColor(scoring.Bands()[row]))
			}
			return style
		}).Render())
		fmt.Fprintln(w, bold.Render("Tracks"))
		fmt.Fprintln(w, consoleTable(r, trackHeaders, trackRows).Render())
		if len(topRows) > 0 {
			fmt.Fprintln(w, bold.Render("Highest scores"))
			fmt.Fprintln(w, consoleTable(r, topHeaders, topRows).Render())
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func consoleTable(r *lipgloss.Renderer, headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.NewStyle().Bold(true).Padding(0, 1)
			}
			return r.NewStyle().Padding(0, 1)
		})
}

func markdownTable(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	b.WriteString("|" + strings.Join(seps, "|") + "|\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return b.String()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	return writeReport("", w, append(data, '\n'))
}
