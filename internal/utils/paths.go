package utils

const (
	RootDir      = "/etc/mathmcp"
	LogDir       = "/etc/mathmcp/log"
	StoreDir     = "/etc/mathmcp/store"
	ConfigPath   = "/etc/mathmcp/config.yaml"
	AuditLogPath = "/etc/mathmcp/log/audit.jsonl"
)
