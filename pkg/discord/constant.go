package discord

import "time"

const webhookPathPrefix = "/api/webhooks/"

// Embed colors.
const (
	ColorInfo  = 0x3498db
	ColorError = 0xe74c3c
)

// Discord-side limits.
const (
	MaxMessageLength  = 2000
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = time.Second
	// Webhooks are limited to roughly five requests per two seconds.
	DefaultBurst    = 5
	DefaultInterval = 400 * time.Millisecond
)

const (
	DefaultUsername = "Inspora"
	UserAgent       = "Inspora-Client/1.0"
)
