package catalog

import "github.com/verte-zerg/spellace/internal/model"

// Tier identifiers.
const (
	Grade1       = "grade1"
	Grade3       = "grade3"
	Grade5       = "grade5"
	Middle       = "middle"
	High         = "high"
	Championship = "championship"
)

// DefaultDifficulty is used when a difficulty identifier is not recognized.
const DefaultDifficulty = Grade1

var levels = []model.DifficultyLevel{
	{ID: Grade1, Name: "1st Grade", Tier: 1, Description: "Simple words for beginners", Color: "success"},
	{ID: Grade3, Name: "3rd Grade", Tier: 2, Description: "Elementary level words", Color: "accent"},
	{ID: Grade5, Name: "5th Grade", Tier: 3, Description: "Intermediate vocabulary", Color: "warning"},
	{ID: Middle, Name: "Middle School", Tier: 4, Description: "Advanced middle school words", Color: "primary"},
	{ID: High, Name: "High School", Tier: 5, Description: "Complex high school vocabulary", Color: "purple"},
	{ID: Championship, Name: "Championship", Tier: 6, Description: "Spelling bee champion level", Color: "cyan"},
}

var builtinWords = map[string][]string{
	Grade1: {
		"cat", "dog", "sun", "run", "fun", "big", "red", "yes",
		"can", "and", "the", "see", "you", "are", "not",
	},
	Grade3: {
		"because", "friend", "school", "people", "water", "today", "money", "happy",
		"laugh", "night", "light", "right", "eight", "might", "sight",
	},
	Grade5: {
		"beautiful", "different", "important", "remember", "chocolate", "sentence", "surprise", "February",
		"Wednesday", "knowledge", "shoulder", "thought", "caught", "brought", "through",
	},
	Middle: {
		"embarrass", "definitely", "restaurant", "necessary", "beginning", "suspicious", "privilege", "rhythm",
		"lieutenant", "conscience", "fluorescent", "questionnaire", "acknowledge", "pronunciation", "miscellaneous",
	},
	High: {
		"pneumonia", "psoriasis", "rhythm", "mnemonic", "prestigious", "bureaucracy", "conscientious", "pharmaceutical",
		"psychedelic", "reconnaissance", "entrepreneur", "millennium", "surveillance", "acquisition", "pronunciation",
	},
	Championship: {
		"autochthonous",
		"perspicacious",
		"sesquipedalian",
		"pneumonoultramicroscopicsilicovolcanoconious",
		"floccinaucinihilipilification",
		"antidisestablishmentarianism",
		"pseudopseudohypoparathyroidism",
		"hippopotomonstrosesquippedaliophobia",
		"supercalifragilisticexpialidocious",
		"pneumonoultramicroscopicsilicovolcanoconiosis",
		"otorhinolaryngological",
		"radioimmunoelectrophoresis",
		"psychoneuroendocrinological",
		"thyroparathyroidectomized",
		"pneumoencephalographically",
	},
}
