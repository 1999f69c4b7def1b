package jobs

import (
	"strings"
	"testing"
)

func TestFormatJobLine_SurfacesTourMetadata(t *testing.T) {
	job := &Job{
		Name:     "Recompute",
		Status:   JobStatusRunning,
		Progress: 40,
		Message:  "Computing statistics",
		Metadata: map[string]any{"tour": "Summer Tour 2023"},
	}

	line := formatJobLine(job)
	if !strings.Contains(line, "[Summer Tour 2023]") {
		t.Errorf("expected the tour to be surfaced, got %q", line)
	}
	if !strings.Contains(line, "40%") {
		t.Errorf("running jobs must show progress, got %q", line)
	}
	if !strings.Contains(line, "Computing statistics") {
		t.Errorf("expected the job message, got %q", line)
	}
}

func TestFormatJobLine_FailedJobShowsError(t *testing.T) {
	job := &Job{
		Name:   "Generate",
		Status: JobStatusFailed,
		Error:  "setlist provider unavailable",
	}

	line := formatJobLine(job)
	if !strings.Contains(line, "setlist provider unavailable") {
		t.Errorf("failed jobs must show their error, got %q", line)
	}
	if strings.Contains(line, "[") {
		t.Errorf("jobs without tour metadata must not show a bracket, got %q", line)
	}
}
