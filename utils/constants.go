// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 12 * time.Hour

// SessionCachePrefix is the prefix used for booking-session cache keys.
const SessionCachePrefix = "session:"

// SessionCacheTTL is how long an unconfirmed booking draft survives.
const SessionCacheTTL = 30 * time.Minute

// HolidayCachePrefix is the prefix used for per-year holiday memo keys.
const HolidayCachePrefix = "holidays:"

// HolidayCacheTTL is the time-to-live for a cached year of holidays.
const HolidayCacheTTL = 12 * time.Hour
