package jobs

import (
	"context"
	"testing"

	"github.com/contre95/tourstats/src/features/config"
)

// blockingHandler holds its job until released, so later jobs queue as pending.
type blockingHandler struct {
	release chan struct{}
}

func (h *blockingHandler) Execute(ctx context.Context, job *Job, progressChan chan<- JobProgress) error {
	<-h.release
	return nil
}

func (h *blockingHandler) Cancel(jobID string) error { return nil }

func newTestService() (*Service, *blockingHandler) {
	service := NewService(&config.Jobs{})
	handler := &blockingHandler{release: make(chan struct{})}
	service.RegisterHandler("stats_generate", handler)
	return service, handler
}

func TestStartJob_OneRunningPerType(t *testing.T) {
	service, handler := newTestService()
	defer close(handler.release)

	firstID, err := service.StartJob("stats_generate", "Generate A", map[string]any{"tour": "Summer Tour 2023"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	secondID, err := service.StartJob("stats_generate", "Generate B", map[string]any{"tour": "Fall Tour 2023"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	first, _ := service.GetJob(firstID)
	if first.Status != JobStatusRunning {
		t.Errorf("first job should run immediately, got %s", first.Status)
	}
	second, _ := service.GetJob(secondID)
	if second.Status != JobStatusPending {
		t.Errorf("second job of the same type must queue, got %s", second.Status)
	}
}

func TestStartJob_IdenticalPendingJobIsNotDuplicated(t *testing.T) {
	service, handler := newTestService()
	defer close(handler.release)

	if _, err := service.StartJob("stats_generate", "Generate", map[string]any{"tour": "Summer Tour 2023"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	pendingID, err := service.StartJob("stats_generate", "Recompute", map[string]any{"tour": "Summer Tour 2023"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	duplicateID, err := service.StartJob("stats_generate", "Recompute", map[string]any{"tour": "Summer Tour 2023"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if duplicateID != pendingID {
		t.Errorf("an identical pending job must be reused, got %s and %s", pendingID, duplicateID)
	}
	otherID, err := service.StartJob("stats_generate", "Recompute", map[string]any{"tour": "Fall Tour 2023"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if otherID == pendingID {
		t.Error("different metadata must produce a distinct job")
	}
}

func TestCancelJob(t *testing.T) {
	service, handler := newTestService()
	defer close(handler.release)

	jobID, err := service.StartJob("stats_generate", "Generate", map[string]any{"tour": "Summer Tour 2023"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := service.CancelJob(jobID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	job, _ := service.GetJob(jobID)
	if job.Status != JobStatusCancelled {
		t.Errorf("expected cancelled status, got %s", job.Status)
	}

	if err := service.CancelJob("no-such-job"); err == nil {
		t.Error("cancelling an unknown job must fail")
	}
}

func TestSameMetadata(t *testing.T) {
	cases := []struct {
		a, b map[string]any
		want bool
	}{
		{map[string]any{"tour": "Summer"}, map[string]any{"tour": "Summer"}, true},
		{map[string]any{"tour": "Summer"}, map[string]any{"tour": "Fall"}, false},
		{map[string]any{"tour": "Summer"}, map[string]any{}, false},
		{nil, nil, true},
	}
	for _, c := range cases {
		if got := sameMetadata(c.a, c.b); got != c.want {
			t.Errorf("sameMetadata(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
