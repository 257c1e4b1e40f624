package report

import (
	"encoding/gob"
	"os"
)

// Checkpoint holds enough state to resume a batch run: every result
// collected so far, and the index of the next job still to run.
type Checkpoint struct {
	Results   []RunResult
	NextJob   int
	TotalJobs int
}

// SaveCheckpoint writes ckpt to path as a gob stream.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint reads a checkpoint previously written by SaveCheckpoint.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
