package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 24 * time.Hour

// RoleParent marks parent tokens; staff tokens carry their staff role.
const RoleParent = "parent"
