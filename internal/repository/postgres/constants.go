package postgres

import "time"

const (
	poolHealthCheckPeriod = 1 * time.Minute
	poolMaxConnLifetime   = 1 * time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second
)

const (
	errQuoteNotFound     = "quote not found"
	errClientNotFound    = "client not found"
	errItemNotFound      = "portfolio item not found"
	errSiteImageNotFound = "site image not found"
	errStaffNotFound     = "staff account not found"
)
