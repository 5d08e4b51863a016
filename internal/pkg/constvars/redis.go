package constvars

const (
	RedisKeySessionFormat   = "session:%s"
	RedisKeyWorkingHours    = "settings:working_hours"
	RedisKeyDashboardCounts = "dashboard:counts"
)
