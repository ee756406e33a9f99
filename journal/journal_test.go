package journal

import (
	"testing"
)

func TestJournal_RecordAndList(t *testing.T) {
	j, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer j.Close()

	receipts := []*Receipt{
		{RunID: "run-1", Group: "US Banks", Destination: "fs:/data/a.html", Bytes: 10, Charts: 4, Success: true, FinishedAt: 100},
		{RunID: "run-2", Group: "US Banks", Destination: "fs:/data/a.html", Bytes: 0, Charts: 0, Success: false, FinishedAt: 200, Skipped: []string{"JPM"}},
	}

	for _, receipt := range receipts {
		if err := j.Record(receipt); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	listed, err := j.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(listed) != 2 {
		t.Fatalf("receipt count mismatch, got %d, want 2", len(listed))
	}

	// chronological order, newest last
	if listed[0].RunID != "run-1" || listed[1].RunID != "run-2" {
		t.Errorf("receipts out of order, got %s then %s", listed[0].RunID, listed[1].RunID)
	}

	if listed[1].Skipped[0] != "JPM" {
		t.Errorf("skipped tickers not kept, got %v", listed[1].Skipped)
	}
}
