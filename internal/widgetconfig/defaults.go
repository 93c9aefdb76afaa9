package widgetconfig

const DefaultAccentColor = "#ee5f64"

// Default returns the canonical baseline document: carousel layout, English
// locale, all toggles on.
func Default() Document {
	return Document{
		Version: CurrentVersion,
		Source: Source{
			SyncEnabled: true,
			LocationIDs: []string{},
		},
		Layout: Layout{
			Type:       LayoutCarousel,
			Width:      "100%",
			Height:     "auto",
			Columns:    3,
			Gap:        16,
			ScrollMode: "snap",
			Animation:  "slide",
			Autoplay: Autoplay{
				Enabled:      true,
				IntervalMs:   5000,
				PauseOnHover: true,
			},
			Navigation: Navigation{
				Arrows:   true,
				Dots:     true,
				Position: "bottom",
			},
		},
		Header: Header{
			Enabled:    true,
			Title:      "What our customers say",
			ShowRating: true,
			ShowCount:  true,
			CTA: CTA{
				Enabled: true,
				Label:   "Write a review",
				URL:     "",
			},
		},
		Reviews: Reviews{
			MinRating:  1,
			MaxReviews: 0,
			ShowEmpty:  true,
			SortBy:     SortNewest,
			Include:    []string{},
			Exclude:    []string{},
		},
		Style: Style{
			Scheme:      "light",
			AccentColor: DefaultAccentColor,
			Colors:      Colors{},
			CustomCSS:   "",
			CustomJS:    "",
		},
		Settings: Settings{
			Locale:       "en",
			LinkTarget:   "_blank",
			RichSnippets: "json-ld",
		},
	}
}
