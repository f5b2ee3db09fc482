package service

import (
	"context"
	"testing"
	"time"

	"github.com/aakb/rasid-api/internal/domain/repository"
)

func TestGetSummaryFillsEmptyMonths(t *testing.T) {
	repo := &fakeReportRepo{
		total: 9000,
		monthly: []repository.MonthlyCollection{
			{Month: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Total: 1100, Count: 2},
			{Month: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), Total: 501, Count: 1},
		},
	}
	svc := NewReportService(repo, ist)
	svc.now = func() time.Time { return time.Date(2024, time.August, 20, 10, 0, 0, 0, ist) }

	got, err := svc.GetSummary(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalCollection != 9000 || got.CurrentMonth != 501 {
		t.Errorf("summary = %+v", got)
	}
	want := []MonthlyPoint{
		{"2024-05", 0, 0},
		{"2024-06", 1100, 2},
		{"2024-07", 0, 0},
		{"2024-08", 501, 1},
	}
	if len(got.Monthly) != len(want) {
		t.Fatalf("Monthly = %+v", got.Monthly)
	}
	for i := range want {
		if got.Monthly[i] != want[i] {
			t.Errorf("Monthly[%d] = %+v, want %+v", i, got.Monthly[i], want[i])
		}
	}
	if repo.since.Format(DateLayout) != "2024-05-01" {
		t.Errorf("since = %v", repo.since)
	}
}

func TestGetSummaryClampsMonths(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, ist)
	got, err := svc.GetSummary(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Monthly) != 6 {
		t.Errorf("default months = %d, want 6", len(got.Monthly))
	}
	got, _ = svc.GetSummary(context.Background(), 100)
	if len(got.Monthly) != MaxReportMonths {
		t.Errorf("clamped months = %d, want %d", len(got.Monthly), MaxReportMonths)
	}
}
