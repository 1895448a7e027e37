package scope

// Keyword lists backing the classifier. All entries are lower-case and used
// only for substring containment against normalized message text. The two
// lists must not share entries. Negative phrases may contain positive words
// ("uk visa" contains "visa"); that is safe because negatives are checked
// first.

// positiveTerms are Schengen member states, common consulate cities, and
// application-process vocabulary. Any hit marks a message in-scope unless a
// negative term matched first.
var positiveTerms = []string{
	// Member states
	"austria", "belgium", "bulgaria", "croatia", "czech", "denmark",
	"estonia", "finland", "france", "germany", "greece", "hungary",
	"iceland", "italy", "latvia", "liechtenstein", "lithuania",
	"luxembourg", "malta", "netherlands", "norway", "poland", "portugal",
	"romania", "slovakia", "slovenia", "spain", "sweden", "switzerland",
	"europe",

	// Consulate cities Indian applicants commonly apply through
	"paris", "berlin", "amsterdam", "rome", "madrid", "lisbon", "vienna",
	"prague", "zurich",

	// Process vocabulary
	"visa", "embassy", "consulate", "vfs", "appointment", "biometric",
	"passport", "itinerary", "cover letter", "travel insurance",
	"bank statement", "proof of funds", "flight reservation",
	"hotel booking", "accommodation", "invitation letter",
	"residence permit", "etias",
}

// negativeTerms are jurisdictions this assistant explicitly does not cover.
// A hit here wins over any positive term in the same message.
var negativeTerms = []string{
	"united states", "usa", "america", "green card", "h1b", "h-1b",
	"united kingdom", "uk visa", "britain", "england", "london",
	"canada", "australia", "new zealand", "ireland",
	"japan", "singapore", "dubai", "uae", "saudi", "qatar",
	"thailand", "malaysia", "china", "russia",
}

// greetingTokens are accepted whole-message greetings, compared after
// normalization strips everything but letters and spaces.
var greetingTokens = map[string]struct{}{
	"hi":             {},
	"hii":            {},
	"hiii":           {},
	"hello":          {},
	"helo":           {},
	"hey":            {},
	"heyy":           {},
	"hello there":    {},
	"hi there":       {},
	"good morning":   {},
	"good evening":   {},
	"good afternoon": {},
	"namaste":        {},
}

// capabilityPhrases are accepted whole-message self-referential questions,
// compared the same way as greetings.
var capabilityPhrases = map[string]struct{}{
	"what can you do":           {},
	"what do you do":            {},
	"who are you":               {},
	"what are you":              {},
	"what are you built for":    {},
	"what were you built for":   {},
	"what is your purpose":      {},
	"whats your purpose":        {},
	"how can you help":          {},
	"how can you help me":       {},
	"what can you help with":    {},
	"what can you help me with": {},
	"tell me about yourself":    {},
}
