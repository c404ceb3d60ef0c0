package normalize

// titleSynonyms expands the abbreviations sources commonly use in job
// titles. Matching happens on lower-cased whitespace-split words, so an
// entry here must be a single word.
var titleSynonyms = map[string]string{
	"sr":    "senior",
	"sr.":   "senior",
	"jr":    "junior",
	"jr.":   "junior",
	"eng":   "engineer",
	"engr":  "engineer",
	"dev":   "developer",
	"mgr":   "manager",
	"mgmt":  "management",
	"swe":   "software engineer",
	"sre":   "site reliability engineer",
	"qa":    "quality assurance",
	"ui":    "user interface",
	"ux":    "user experience",
	"fe":    "frontend",
	"be":    "backend",
	"fs":    "full stack",
	"admin": "administrator",
	"assoc": "associate",
	"asst":  "assistant",
}

// smallWords stay lower-case when title-casing, unless they lead the title.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "at": true, "for": true,
	"in": true, "of": true, "on": true, "or": true, "the": true,
	"to": true, "with": true,
}
