package out

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"studytrack/internal/modules/record/domain"
	recordout "studytrack/internal/modules/record/port/out"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/tx"
)

// FileStateStore keeps the whole record document as one indented JSON file.
type FileStateStore struct {
	path string
}

func NewFileStateStore(path string) recordout.StateStore {
	return &FileStateStore{path: path}
}

func (s *FileStateStore) Load(_ context.Context) (domain.State, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewState(), nil
	}
	if err != nil {
		return domain.State{}, fmt.Errorf("read state document: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.NewState(), nil
	}
	state := domain.NewState()
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.State{}, fmt.Errorf("%w: %s: %v", apperrors.ErrCorruptState, s.path, err)
	}
	state.Normalize()
	return state, nil
}

func (s *FileStateStore) Save(_ context.Context, state domain.State) error {
	state.Normalize()
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state document: %w", err)
	}
	if err := tx.ReplaceFile(s.path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write state document: %w", err)
	}
	return nil
}
