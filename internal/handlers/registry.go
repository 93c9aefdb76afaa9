package handlers

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	WidgetHandler   *WidgetHandler
	LocationHandler *LocationHandler
	OverrideHandler *OverrideHandler
	ConfigHandler   *ConfigHandler
	EmbedHandler    *EmbedHandler
	SummaryHandler  *SummaryHandler
}
