package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"mathmcp/internal/utils"
)

func NewAuditStore(path string) *AuditStore {
	return &AuditStore{
		path:              path,
		filesystemHandler: utils.NewFilesystemExecutor(),
	}
}

// AuditStore appends records to a JSONL file. The flock guards against a
// second process writing the same file.
type AuditStore struct {
	path              string
	mu                sync.Mutex
	filesystemHandler utils.FilesystemHandler
}

func (s *AuditStore) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.filesystemHandler.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	f, err := s.filesystemHandler.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := s.filesystemHandler.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return err
	}
	defer s.filesystemHandler.Flock(int(f.Fd()), syscall.LOCK_UN)

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = f.Write(append(b, '\n'))
	return err
}

// NopStore drops records; used when auditing is disabled.
type NopStore struct{}

func (NopStore) Append(Record) error { return nil }
