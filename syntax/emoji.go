package syntax

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

// emojiTable maps :shortcode: names to their glyphs. The set covers the
// GitHub names seen most in markdown notes; it is not meant to be
// exhaustive.
var emojiTable = map[string]string{
	"smile":          "😄",
	"smiley":         "😃",
	"grin":           "😁",
	"grinning":       "😀",
	"laughing":       "😆",
	"joy":            "😂",
	"wink":           "😉",
	"blush":          "😊",
	"heart":          "❤️",
	"broken_heart":   "💔",
	"thumbsup":       "👍",
	"+1":             "👍",
	"thumbsdown":     "👎",
	"-1":             "👎",
	"clap":           "👏",
	"wave":           "👋",
	"pray":           "🙏",
	"muscle":         "💪",
	"eyes":           "👀",
	"thinking":       "🤔",
	"shrug":          "🤷",
	"tada":           "🎉",
	"sparkles":       "✨",
	"star":           "⭐",
	"fire":           "🔥",
	"boom":           "💥",
	"zap":            "⚡",
	"rocket":         "🚀",
	"bulb":           "💡",
	"warning":        "⚠️",
	"x":              "❌",
	"heavy_check_mark": "✔️",
	"white_check_mark": "✅",
	"question":       "❓",
	"exclamation":    "❗",
	"memo":           "📝",
	"book":           "📖",
	"books":          "📚",
	"bookmark":       "🔖",
	"link":           "🔗",
	"paperclip":      "📎",
	"pushpin":        "📌",
	"calendar":       "📅",
	"clock":          "🕐",
	"hourglass":      "⌛",
	"mag":            "🔍",
	"lock":           "🔒",
	"unlock":         "🔓",
	"key":            "🔑",
	"bell":           "🔔",
	"gear":           "⚙️",
	"hammer":         "🔨",
	"wrench":         "🔧",
	"bug":            "🐛",
	"snail":          "🐌",
	"turtle":         "🐢",
	"cat":            "🐱",
	"dog":            "🐶",
	"coffee":         "☕",
	"beer":           "🍺",
	"pizza":          "🍕",
	"cake":           "🍰",
	"apple":          "🍎",
	"sun":            "☀️",
	"moon":           "🌙",
	"cloud":          "☁️",
	"umbrella":       "☂️",
	"snowflake":      "❄️",
	"rainbow":        "🌈",
	"house":          "🏠",
	"car":            "🚗",
	"airplane":       "✈️",
	"email":          "📧",
	"phone":          "📞",
	"computer":       "💻",
	"tv":             "📺",
	"camera":         "📷",
	"art":            "🎨",
	"musical_note":   "🎵",
	"trophy":         "🏆",
	"gift":           "🎁",
	"moneybag":       "💰",
	"chart":          "💹",
	"100":            "💯",
}
