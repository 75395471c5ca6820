// Package recommend ranks career titles from extracted interest keywords.
package recommend

import (
	"sort"

	"github.com/yoockh/careercounsel/internal/nlp"
	"github.com/yoockh/careercounsel/internal/sentiment"
)

const DefaultLimit = 3

// CategoryCareers lists the titles offered for one interest category.
type CategoryCareers struct {
	Category nlp.Category
	Titles   []string
}

// Catalog is walked in order when backfilling.
type Catalog []CategoryCareers

var DefaultCatalog = Catalog{
	{nlp.CategoryTech, []string{"Software Developer", "Data Scientist", "Cybersecurity Analyst"}},
	{nlp.CategoryCreative, []string{"UX Designer", "Graphic Designer", "Content Creator"}},
	{nlp.CategoryBusiness, []string{"Product Manager", "Digital Marketing Specialist", "Financial Analyst"}},
	{nlp.CategoryHealthcare, []string{"Healthcare Administrator", "Medical Researcher", "Health Informatics Specialist"}},
	{nlp.CategoryEducation, []string{"Instructional Designer", "Education Technology Specialist", "Curriculum Developer"}},
}

// Titles flattens the catalog in category order.
func (c Catalog) Titles() []string {
	var out []string
	for _, cc := range c {
		out = append(out, cc.Titles...)
	}
	return out
}

type Recommender struct {
	catalog Catalog
}

// New uses DefaultCatalog when catalog is empty.
func New(catalog Catalog) *Recommender {
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}
	return &Recommender{catalog: catalog}
}

// Recommend returns up to limit distinct titles: categories with more
// keyword matches first (ties keep catalog order), then the rest of the
// catalog as backfill. The sentiment does not change the ranking.
func (r *Recommender) Recommend(kw nlp.Keywords, _ sentiment.Sentiment, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]CategoryCareers, len(r.catalog))
	copy(ranked, r.catalog)
	sort.SliceStable(ranked, func(i, j int) bool {
		return kw.Count(ranked[i].Category) > kw.Count(ranked[j].Category)
	})

	out := make([]string, 0, limit)
	seen := make(map[string]struct{}, limit)
	add := func(title string) bool {
		if _, dup := seen[title]; dup {
			return len(out) < limit
		}
		seen[title] = struct{}{}
		out = append(out, title)
		return len(out) < limit
	}

	for _, cc := range ranked {
		if kw.Count(cc.Category) == 0 {
			break
		}
		for _, title := range cc.Titles {
			if !add(title) {
				return out
			}
		}
	}
	for _, title := range r.catalog.Titles() {
		if !add(title) {
			return out
		}
	}
	return out
}
