package domain

type TaskStatus string

const (
	TaskToDo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
	TaskOverdue    TaskStatus = "Overdue"
)

type TaskSource string

const (
	SourceManual   TaskSource = "Manual"
	SourceAsana    TaskSource = "Asana"
	SourceOutlook  TaskSource = "Outlook"
	SourceWhatsapp TaskSource = "Whatsapp"
	SourceTrimble  TaskSource = "Trimble Connect"
)

// ValidTaskSources is the canonical set of accepted task source strings.
var ValidTaskSources = map[TaskSource]bool{
	SourceManual:   true,
	SourceAsana:    true,
	SourceOutlook:  true,
	SourceWhatsapp: true,
	SourceTrimble:  true,
}

type MeetingPlatform string

const (
	PlatformGoogleMeet MeetingPlatform = "Google Meet"
	PlatformMSTeams    MeetingPlatform = "MS Teams"
	PlatformWebex      MeetingPlatform = "Webex"
)

// ValidMeetingPlatforms is the canonical set of accepted meeting platforms.
var ValidMeetingPlatforms = map[MeetingPlatform]bool{
	PlatformGoogleMeet: true,
	PlatformMSTeams:    true,
	PlatformWebex:      true,
}

// FieldKind classifies an integration credential field for form rendering.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldPassword FieldKind = "password"
	FieldEmail    FieldKind = "email"
)
