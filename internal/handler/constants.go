package handler

import "time"

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// ReadinessTimeout bounds the database ping of the readiness probe
const ReadinessTimeout = 2 * time.Second

// URL parameters
const (
	ParamTemplateID = "id"
	ParamBuffName   = "name"
)

// Cache settings
const (
	// CacheSchemaVersion is bumped when the rendered response shape changes
	CacheSchemaVersion = "1.0"

	cacheKeyTemplate = "template:"
	cacheKeyBuffs    = "buffs:"
)

// HTTP headers
const (
	HeaderContentType = "Content-Type"
	HeaderCache       = "X-Cache"

	ContentTypeJSON = "application/json"
	CacheHit        = "HIT"
	CacheMiss       = "MISS"
)

// Log Messages
const (
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgTemplateNotFound = "Template lookup missed"
	LogMsgBuffsNotFound    = "Buff list lookup missed"
)

// Health messages
const (
	MsgDatabaseUnavailable = "database connection failed"
	MsgCatalogNotLoaded    = "catalog not loaded"
)
