package theme

func GetPredefinedThemes() map[string]*Theme {
	return map[string]*Theme{
		"default": DefaultTheme(),
		"dark":    DarkTheme(),
		"light":   LightTheme(),
		"nord":    NordTheme(),
	}
}

func GetThemeNames() []string {
	return []string{
		"default",
		"dark",
		"light",
		"nord",
	}
}

func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		Primary:   "#C0392B",
		Secondary: "#8AA4EB",
		Success:   "#04B575",
		Error:     "#FF4040",
		Warning:   "#FF8800",

		TextPrimary:   "#FAFAFA",
		TextSecondary: "#A0A0A0",
		TextMuted:     "#6C6C6C",

		KindArticle:  "#FAFAFA",
		KindPhoto:    "#0088FF",
		KindVideo:    "#B46CF0",
		KindTrending: "#FF8800",
		Featured:     "#FFD700",

		BannerBg:     "#8B0000",
		BannerFg:     "#FAFAFA",
		Announcement: "#04B575",

		BorderColor:  "#C0392B",
		SelectedBg:   "#C0392B",
		SelectedFg:   "#FAFAFA",
		HeaderBg:     "#C0392B",
		HeaderFg:     "#FAFAFA",
		Separator:    "#444444",
		HelpText:     "#888888",
		SubtitleText: "#6C6C6C",
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",

		Primary:   "#7AA2F7",
		Secondary: "#BB9AF7",
		Success:   "#9ECE6A",
		Error:     "#F7768E",
		Warning:   "#E0AF68",

		TextPrimary:   "#C0CAF5",
		TextSecondary: "#9AA5CE",
		TextMuted:     "#565F89",

		KindArticle:  "#C0CAF5",
		KindPhoto:    "#7DCFFF",
		KindVideo:    "#BB9AF7",
		KindTrending: "#FF9E64",
		Featured:     "#E0AF68",

		BannerBg:     "#F7768E",
		BannerFg:     "#1A1B26",
		Announcement: "#9ECE6A",

		BorderColor:  "#7AA2F7",
		SelectedBg:   "#7AA2F7",
		SelectedFg:   "#1A1B26",
		HeaderBg:     "#7AA2F7",
		HeaderFg:     "#1A1B26",
		Separator:    "#3B4261",
		HelpText:     "#565F89",
		SubtitleText: "#565F89",
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: "light",

		Primary:   "#B91C1C",
		Secondary: "#2563EB",
		Success:   "#059669",
		Error:     "#DC2626",
		Warning:   "#D97706",

		TextPrimary:   "#1F2937",
		TextSecondary: "#6B7280",
		TextMuted:     "#9CA3AF",

		KindArticle:  "#1F2937",
		KindPhoto:    "#0284C7",
		KindVideo:    "#7C3AED",
		KindTrending: "#EA580C",
		Featured:     "#B45309",

		BannerBg:     "#FEE2E2",
		BannerFg:     "#991B1B",
		Announcement: "#059669",

		BorderColor:  "#B91C1C",
		SelectedBg:   "#B91C1C",
		SelectedFg:   "#FFFFFF",
		HeaderBg:     "#B91C1C",
		HeaderFg:     "#FFFFFF",
		Separator:    "#D1D5DB",
		HelpText:     "#6B7280",
		SubtitleText: "#9CA3AF",
	}
}

func NordTheme() *Theme {
	return &Theme{
		Name: "nord",

		Primary:   "#88C0D0",
		Secondary: "#81A1C1",
		Success:   "#A3BE8C",
		Error:     "#BF616A",
		Warning:   "#EBCB8B",

		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextMuted:     "#4C566A",

		KindArticle:  "#ECEFF4",
		KindPhoto:    "#5E81AC",
		KindVideo:    "#B48EAD",
		KindTrending: "#D08770",
		Featured:     "#EBCB8B",

		BannerBg:     "#BF616A",
		BannerFg:     "#2E3440",
		Announcement: "#A3BE8C",

		BorderColor:  "#88C0D0",
		SelectedBg:   "#88C0D0",
		SelectedFg:   "#2E3440",
		HeaderBg:     "#88C0D0",
		HeaderFg:     "#2E3440",
		Separator:    "#434C5E",
		HelpText:     "#4C566A",
		SubtitleText: "#4C566A",
	}
}
