package domain

// Weekday constants. Day 0 is Monday, matching how schedules are persisted.
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6

	DaysInWeek = 7
)

// WeekdayNames maps weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Channel names accepted in a channel setting.
const (
	ChannelNtfy       = "ntfy"
	ChannelMattermost = "mattermost"
	ChannelSlack      = "slack"
	ChannelEmail      = "email"
	ChannelExpoPush   = "expo_push"
)

// NotificationStatus is the delivery state of a history record.
type NotificationStatus string

const (
	StatusSent      NotificationStatus = "sent"
	StatusFailed    NotificationStatus = "failed"
	StatusRetrying  NotificationStatus = "retrying"
	StatusAbandoned NotificationStatus = "abandoned"
)

// Terminal reports whether no further retry will happen for the status.
func (s NotificationStatus) Terminal() bool {
	return s == StatusSent || s == StatusAbandoned
}

// DispatchMode selects how the dispatcher walks a user's channels.
type DispatchMode string

const (
	// DispatchFanout attempts every enabled channel.
	DispatchFanout DispatchMode = "fanout"
	// DispatchFirstSuccess stops at the first channel that delivers.
	DispatchFirstSuccess DispatchMode = "first_success"
)

// PushChannelPriority is the priority given to a registered push token.
const PushChannelPriority = 0

// DefaultTimezone is used when a user has no zone or an unknown one.
const DefaultTimezone = "UTC"

// ClockLayout is the minute-precision time-of-day format used everywhere.
const ClockLayout = "15:04"

// DateLayout formats a target date.
const DateLayout = "2006-01-02"
