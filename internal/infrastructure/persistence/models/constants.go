package models

// Table names, kept in one place so migrations and models agree.
const (
	TableAssets      = "assets"
	TableAssignments = "asset_assignments"
	TableCustomers   = "customers"
	TableHeadends    = "headends"
	TableFDHs        = "fdhs"
	TableSplitters   = "splitters"
	TableTasks       = "deployment_tasks"
	TableTechnicians = "technicians"
	TableAuditLog    = "audit_log"
	TableUsers       = "users"
)
