// Package knowledge holds the static lookup tables the recommendation
// engine consults: emotion keywords, mood-to-cuisine mappings, contextual
// adjustment bundles and intent tables. Everything here is initialized once
// and treated as read-only afterwards, so it is safe for unlimited
// concurrent readers.
package knowledge

// EmotionOrder fixes the scan order over the emotion vocabulary. Primary
// labels come before secondary ones so that confidence ties resolve toward
// the primary vocabulary.
var EmotionOrder = []string{
	"happy", "sad", "stressed", "angry", "tired", "lonely",
	"romantic", "nostalgic", "adventurous", "comfort",
	"excited", "grateful", "confused",
}

// EmotionKeywords maps each emotion label to the keywords that signal it
// in free text.
var EmotionKeywords = map[string][]string{
	"happy":       {"happy", "joyful", "glad", "cheerful", "delighted", "thrilled", "excited", "great", "wonderful", "amazing"},
	"sad":         {"sad", "unhappy", "depressed", "down", "blue", "gloomy", "miserable", "heartbroken", "crying"},
	"stressed":    {"stressed", "overwhelmed", "pressure", "deadline", "anxious", "tense", "frazzled", "overworked"},
	"angry":       {"angry", "furious", "annoyed", "irritated", "mad", "frustrated", "outraged"},
	"tired":       {"tired", "exhausted", "sleepy", "drained", "fatigued", "weary", "worn out"},
	"lonely":      {"lonely", "alone", "isolated", "solitary", "abandoned", "left out"},
	"romantic":    {"romantic", "date", "anniversary", "valentine", "love", "intimate"},
	"nostalgic":   {"nostalgic", "childhood", "memories", "miss", "remember", "old times", "homesick"},
	"adventurous": {"adventurous", "adventure", "try something new", "explore", "daring", "bold", "curious"},
	"comfort":     {"comfort", "cozy", "warm", "familiar", "soothing", "homey"},
	"excited":     {"excited", "thrilled", "pumped", "can't wait", "stoked", "hyped"},
	"grateful":    {"grateful", "thankful", "blessed", "appreciate"},
	"confused":    {"confused", "unsure", "undecided", "don't know", "torn"},
}

// EmotionSynonyms normalizes explicit self-reported states to canonical
// emotion labels.
var EmotionSynonyms = map[string]string{
	"feeling down":  "sad",
	"down":          "sad",
	"blue":          "sad",
	"depressed":     "sad",
	"unhappy":       "sad",
	"joyful":        "happy",
	"cheerful":      "happy",
	"delighted":     "happy",
	"thrilled":      "excited",
	"pumped":        "excited",
	"anxious":       "stressed",
	"overwhelmed":   "stressed",
	"tense":         "stressed",
	"worried":       "stressed",
	"furious":       "angry",
	"mad":           "angry",
	"frustrated":    "angry",
	"exhausted":     "tired",
	"sleepy":        "tired",
	"drained":       "tired",
	"isolated":      "lonely",
	"alone":         "lonely",
	"in love":       "romantic",
	"homesick":      "nostalgic",
	"curious":       "adventurous",
	"daring":        "adventurous",
	"cozy":          "comfort",
	"thankful":      "grateful",
	"blessed":       "grateful",
	"unsure":        "confused",
	"undecided":     "confused",
	"okay":          "neutral",
	"fine":          "neutral",
	"meh":           "neutral",
}

// IntensityModifiers maps intensity words to a 1-5 level; the highest
// matched level wins.
var IntensityModifiers = map[string]int{
	"extremely":  5,
	"incredibly": 5,
	"absolutely": 5,
	"very":       4,
	"really":     4,
	"so":         4,
	"quite":      3,
	"pretty":     3,
	"somewhat":   2,
	"a bit":      2,
	"a little":   2,
	"slightly":   1,
	"mildly":     1,
}

// ConflictingEmotionPairs lists emotion pairs whose co-occurrence lowers
// the overall analysis confidence.
var ConflictingEmotionPairs = [][2]string{
	{"happy", "sad"},
	{"happy", "angry"},
	{"excited", "tired"},
	{"adventurous", "comfort"},
	{"romantic", "lonely"},
}
