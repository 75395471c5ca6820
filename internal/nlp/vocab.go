package nlp

import "strings"

// Category is one of the five interest areas the extractor knows about.
type Category string

const (
	CategoryTech       Category = "tech"
	CategoryCreative   Category = "creative"
	CategoryBusiness   Category = "business"
	CategoryHealthcare Category = "healthcare"
	CategoryEducation  Category = "education"

	// CategoryAll keys the concatenation of every category's matches.
	CategoryAll Category = "all"
)

// Categories is the fixed enumeration order used for concatenation and
// tie-breaking.
var Categories = []Category{
	CategoryTech,
	CategoryCreative,
	CategoryBusiness,
	CategoryHealthcare,
	CategoryEducation,
}

var rawVocabulary = map[Category][]string{
	CategoryTech: {
		"programming", "coding", "developer", "software", "web", "app", "computer",
		"technology", "data", "science", "machine learning", "ai",
		"artificial intelligence", "python", "javascript", "java", "c++", "algorithm",
		"database", "cloud", "cybersecurity", "network", "it", "information technology",
		"tech", "engineering", "system", "frontend", "backend", "fullstack", "devops",
		"security", "hacking", "blockchain", "automation",
	},
	CategoryCreative: {
		"design", "art", "creative", "visual", "graphic", "ui", "ux", "user experience",
		"user interface", "illustration", "animation", "drawing", "photography",
		"video", "film", "music", "writing", "content", "storytelling", "branding",
		"fashion", "architecture", "interior design", "game design", "advertising",
		"marketing",
	},
	CategoryBusiness: {
		"business", "management", "marketing", "sales", "finance", "accounting",
		"economics", "entrepreneurship", "startup", "leadership", "strategy",
		"consulting", "project management", "product management", "operations", "hr",
		"human resources", "recruitment", "analytics", "market research", "ecommerce",
		"digital marketing", "seo", "social media", "advertising",
	},
	CategoryHealthcare: {
		"healthcare", "medical", "doctor", "nurse", "physician", "therapy", "therapist",
		"clinical", "health", "patient", "hospital", "pharmacy", "medicine", "dental",
		"dentist", "psychology", "psychiatry", "nutrition", "fitness", "wellness",
		"public health", "research", "biology", "anatomy", "physiology",
	},
	CategoryEducation: {
		"education", "teaching", "teacher", "professor", "academic", "school",
		"university", "college", "learning", "student", "curriculum", "instruction",
		"training", "coaching", "mentoring", "e-learning", "online learning",
		"educational technology", "edtech",
	},
}

// vocabulary holds every term in the same shape tokens take after
// Normalize, Tokenize and Bigrams, so lookups compare like with like.
// Terms that carry punctuation can never appear in normalized input and
// are left out instead of being collapsed into another word.
var vocabulary = func() map[Category]map[string]struct{} {
	out := make(map[Category]map[string]struct{}, len(rawVocabulary))
	for cat, terms := range rawVocabulary {
		set := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			if Normalize(term) != strings.ToLower(term) {
				continue
			}
			words := strings.Fields(Normalize(term))
			for i, w := range words {
				words[i] = Lemmatize(w)
			}
			if len(words) == 0 {
				continue
			}
			set[strings.Join(words, " ")] = struct{}{}
		}
		out[cat] = set
	}
	return out
}()

// InVocabulary reports whether a token or bigram belongs to cat.
func InVocabulary(cat Category, term string) bool {
	_, ok := vocabulary[cat][term]
	return ok
}
