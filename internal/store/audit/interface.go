package audit

type AuditStoreHandler interface {
	Append(rec Record) error
}
