package report

import "testing"

func TestTableAddAndResultsSorted(t *testing.T) {
	tbl := NewTable()
	tbl.Add(RunResult{Name: "zebra", Steps: 3})
	tbl.Add(RunResult{Name: "apple", Steps: 1})
	tbl.Add(RunResult{Name: "mango", Steps: 2})

	if tbl.Len() != 3 {
		t.Fatalf("Len()=%d, want 3", tbl.Len())
	}

	got := tbl.Results()
	want := []string{"apple", "mango", "zebra"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Results()[%d].Name=%s, want %s", i, got[i].Name, name)
		}
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/checkpoint.gob"

	ckpt := &Checkpoint{
		Results: []RunResult{
			{Name: "a", Steps: 5, Halted: true, FinalPC: 0x10, A: 0xAB},
		},
		NextJob:   1,
		TotalJobs: 4,
	}
	if err := SaveCheckpoint(path, ckpt); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	loaded, err := LoadCheckpoint(path)
	if err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}
	if loaded.NextJob != 1 || loaded.TotalJobs != 4 || len(loaded.Results) != 1 {
		t.Fatalf("loaded checkpoint mismatch: %+v", loaded)
	}
	if loaded.Results[0].A != 0xAB {
		t.Errorf("loaded result A=%#02x, want 0xAB", loaded.Results[0].A)
	}
}
