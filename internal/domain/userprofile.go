package domain

// UserProfile is the single local user shown in the header.
type UserProfile struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar"`
}
