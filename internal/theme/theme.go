package theme

type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// item kind
	KindArticle  string
	KindPhoto    string
	KindVideo    string
	KindTrending string
	Featured     string

	// list chrome
	BannerBg     string
	BannerFg     string
	Announcement string

	// UI element
	BorderColor  string
	SelectedBg   string
	SelectedFg   string
	HeaderBg     string
	HeaderFg     string
	Separator    string
	HelpText     string
	SubtitleText string
}
