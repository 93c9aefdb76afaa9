package models

// Widget lifecycle
type WidgetStatus string

const (
	WidgetStatusDraft     WidgetStatus = "draft"
	WidgetStatusPublished WidgetStatus = "published"
)

func ValidWidgetStatuses() []WidgetStatus {
	return []WidgetStatus{WidgetStatusDraft, WidgetStatusPublished}
}

// Review source providers
type Provider string

const (
	ProviderGoogle      Provider = "google"
	ProviderFacebook    Provider = "facebook"
	ProviderYelp        Provider = "yelp"
	ProviderTrustpilot  Provider = "trustpilot"
	ProviderTripadvisor Provider = "tripadvisor"
)

func ValidProviders() []Provider {
	return []Provider{
		ProviderGoogle,
		ProviderFacebook,
		ProviderYelp,
		ProviderTrustpilot,
		ProviderTripadvisor,
	}
}

// User roles carried in auth claims
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
	UserRoleViewer    UserRole = "viewer"
)
