package domain

// DefaultUser is the placeholder profile used until the user edits it.
func DefaultUser() UserProfile {
	return UserProfile{
		Name:      "Alex Drake",
		Role:      "BIM Manager",
		AvatarURL: "https://picsum.photos/seed/user/40/40",
	}
}

// DefaultIntegrations returns the fixed integration catalog, all
// disconnected. Callers own the returned slice.
func DefaultIntegrations() []Integration {
	return []Integration{
		{Name: "Asana", Description: "For core project and task management.", Fields: []IntegrationField{
			{ID: "token", Label: "Personal Access Token", Kind: FieldPassword},
			{ID: "workspaceId", Label: "Default Workspace ID", Kind: FieldText},
		}},
		{Name: "Outlook", Description: "Imports tasks from flagged emails.", Fields: []IntegrationField{
			{ID: "email", Label: "Outlook Email", Kind: FieldEmail},
			{ID: "password", Label: "App Password", Kind: FieldPassword},
		}},
		{Name: "WhatsApp", Description: "Captures tasks from messages.", Fields: []IntegrationField{
			{ID: "phone", Label: "Phone Number", Kind: FieldText},
		}},
		{Name: "Trimble Connect", Description: "For BIM collaboration and issue tracking.", Fields: []IntegrationField{
			{ID: "webhookUrl", Label: "Webhook URL", Kind: FieldText},
		}},
		{Name: "ActivityWatch", Description: "Tracks time and productivity patterns.", Fields: []IntegrationField{}},
		{Name: "Obsidian", Description: "Your personal knowledge database.", Fields: []IntegrationField{
			{ID: "vaultPath", Label: "API Key", Kind: FieldText},
		}},
		{Name: "Notion", Description: "Sync knowledge bases and project documentation.", Fields: []IntegrationField{
			{ID: "token", Label: "Notion Integration Token", Kind: FieldPassword},
		}},
		{Name: "Google Drive", Description: "Browse your knowledge vault stored in Drive.", Fields: []IntegrationField{
			{ID: "clientId", Label: "OAuth Client ID", Kind: FieldText},
		}},
		{Name: "Google Meet", Description: "For meeting transcription.", Fields: []IntegrationField{}},
		{Name: "MS Teams", Description: "For meeting transcription.", Fields: []IntegrationField{}},
	}
}
