package env

import (
	"mathmcp/internal/utils"
)

func NewBootstrapManager() *BootstrapManager {
	return &BootstrapManager{
		filesystemHandler: utils.NewFilesystemExecutor(),
	}
}

type BootstrapManager struct {
	filesystemHandler utils.FilesystemHandler
}

// SetupRuntime prepares the directories the server writes into.
func (m *BootstrapManager) SetupRuntime() error {
	dirs := []string{
		utils.RootDir,
		utils.LogDir,
		utils.StoreDir,
	}
	for _, dir := range dirs {
		if err := m.filesystemHandler.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
