package constants

const (
	DEFAULT_PAGE_SIZE          = 50
	MAX_PAGE_SIZE              = 500
	DEFAULT_NOTIFICATIONS_SIZE = 20
	MAX_ATTRIBUTES_PER_UPDATE  = 32
	DEFAULT_RECENT_SCANS_SIZE  = 10
	MAX_QUALITY_SCORE          = 100
)
