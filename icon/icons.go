package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Search
	Star
	Film
	Stream
	Filter
	End
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "x",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・;)",
		squares: "🟦",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(°ロ°)",
		squares: "🟪",
	},
	Star: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "☆",
		squares: "🟨",
	},
	Film: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "#",
		kaomoji: "(¬‿¬)",
		squares: "⬛",
	},
	Stream: {
		emoji:   "📺",
		nerd:    "",
		plain:   ">",
		kaomoji: "(◕‿◕)",
		squares: "🟧",
	},
	Filter: {
		emoji:   "🎛️",
		nerd:    "",
		plain:   "=",
		kaomoji: "(•̀ᴗ•́)",
		squares: "🟫",
	},
	End: {
		emoji:   "🏁",
		nerd:    "",
		plain:   "|",
		kaomoji: "(╯°□°)╯",
		squares: "⬜",
	},
}
