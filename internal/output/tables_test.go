package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dotcommander/ccfscore/internal/scoring"
)

func TestFormatTracks(t *testing.T) {
	tests := []struct {
		format       string
		wantContains []string
	}{
		{"console", []string{"Sub-tier", "80+ Integridade Funcional", "Baixo", "37 a 39", "Superior a 3 semanas"}},
		{"markdown", []string{"| Tier | Sub-tier | Range | Track | Review | Guidance |", "| Extremo | 4A | 32 a 36 |"}},
		{"json", []string{`"sub_tier": "2B"`, `"display_color": "trilha-yellow"`, `"tier": "Moderate"`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := FormatTracks(&buf, tt.format); err != nil {
				t.Fatalf("FormatTracks() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q\n%s", want, buf.String())
				}
			}
		})
	}

	if err := FormatTracks(&bytes.Buffer{}, "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatMobilityScale(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatMobilityScale(&buf, "json"); err != nil {
		t.Fatalf("FormatMobilityScale() error = %v", err)
	}
	var levels []scoring.MobilityLevel
	if err := json.Unmarshal(buf.Bytes(), &levels); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(levels) != 11 || levels[10].Label != "deambula 5m independente" || levels[0].Points != 4 {
		t.Errorf("unexpected levels: %+v", levels)
	}

	buf.Reset()
	if err := FormatMobilityScale(&buf, "console"); err != nil {
		t.Fatalf("FormatMobilityScale() error = %v", err)
	}
	for _, want := range []string{"IMS", "restrito ao leito", "deambula 5m com DAM"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("console output missing %q", want)
		}
	}

	buf.Reset()
	if err := FormatMobilityScale(&buf, "markdown"); err != nil {
		t.Fatalf("FormatMobilityScale() error = %v", err)
	}
	if !strings.Contains(buf.String(), "| 3 | senta, mas precisa de auxílio | 3 |") {
		t.Errorf("markdown output:\n%s", buf.String())
	}
}

func TestNewDistribution(t *testing.T) {
	d := NewDistribution(sampleSummary(), 2)

	if d.Assessments != 4 || d.Scored != 3 || d.Failed != 1 || d.Untracked != 1 {
		t.Errorf("distribution = %+v", d)
	}
	if len(d.Tracks) != 8 {
		t.Fatalf("got %d tracks, want 8", len(d.Tracks))
	}
	if d.Tracks[1].SubTier != "1B" || d.Tracks[1].Count != 1 || d.Tracks[0].Count != 0 {
		t.Errorf("tracks = %+v", d.Tracks)
	}
	if len(d.Top) != 2 {
		t.Fatalf("got %d ranked, want 2", len(d.Top))
	}
	if d.Top[0].Name != "João" || d.Top[0].Total != 38 || d.Top[0].SubTier != "4B" {
		t.Errorf("top[0] = %+v", d.Top[0])
	}
	if d.Top[1].Name != "Maria" || d.Top[1].Band != "Low" {
		t.Errorf("top[1] = %+v", d.Top[1])
	}

	if all := NewDistribution(sampleSummary(), 0); len(all.Top) != 3 {
		t.Errorf("limit 0 should keep all scored, got %d", len(all.Top))
	}
}

func TestFormatDistribution(t *testing.T) {
	d := NewDistribution(sampleSummary(), 0)

	tests := []struct {
		format       string
		wantContains []string
	}{
		{"console", []string{"4 assessments, 3 scored, 1 failed", "Bands", "Extreme", "Highest scores", "João", "no track"}},
		{"markdown", []string{"# CCF Distribution", "| Low | 2 |", "| 4B | 80+ Complexidade Avançada | 1 |", "| - | no track | 1 |", "| João | 38 | Extreme | 4B | ward.ccf.yaml |"}},
		{"json", []string{`"project_root": "/clinic"`, `"untracked": 1`, `"total": 38`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := FormatDistribution(&buf, d, tt.format); err != nil {
				t.Fatalf("FormatDistribution() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q\n%s", want, buf.String())
				}
			}
		})
	}
}
