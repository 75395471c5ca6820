package nlp

import (
	"reflect"
	"testing"
)

func TestExtractKeywordsTech(t *testing.T) {
	kw := ExtractKeywords("I love python and javascript")
	want := []string{"python", "javascript"}
	if !reflect.DeepEqual(kw[CategoryTech], want) {
		t.Fatalf("tech=%v want %v", kw[CategoryTech], want)
	}
	if !reflect.DeepEqual(kw.All(), want) {
		t.Fatalf("all=%v want %v", kw.All(), want)
	}
}

func TestExtractKeywordsBigramsAndOrder(t *testing.T) {
	kw := ExtractKeywords("Machine learning and data science")
	if want := []string{"data", "science", "machine learning"}; !reflect.DeepEqual(kw[CategoryTech], want) {
		t.Fatalf("tech=%v want %v", kw[CategoryTech], want)
	}
	if want := []string{"learning"}; !reflect.DeepEqual(kw[CategoryEducation], want) {
		t.Fatalf("education=%v want %v", kw[CategoryEducation], want)
	}
	if want := []string{"data", "science", "machine learning", "learning"}; !reflect.DeepEqual(kw.All(), want) {
		t.Fatalf("all=%v want %v", kw.All(), want)
	}
}

func TestExtractKeywordsKeepsRepeats(t *testing.T) {
	kw := ExtractKeywords("python, python")
	if want := []string{"python", "python"}; !reflect.DeepEqual(kw[CategoryTech], want) {
		t.Fatalf("tech=%v want %v", kw[CategoryTech], want)
	}
}

func TestExtractKeywordsPluralVocabulary(t *testing.T) {
	kw := ExtractKeywords("Working in human resources")
	if kw.Count(CategoryBusiness) != 1 || kw[CategoryBusiness][0] != "human resource" {
		t.Fatalf("business=%v", kw[CategoryBusiness])
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	kw := ExtractKeywords("")
	for _, cat := range append(append([]Category(nil), Categories...), CategoryAll) {
		got, ok := kw[cat]
		if !ok || got == nil || len(got) != 0 {
			t.Fatalf("category %s: expected empty non-nil list, got %#v", cat, got)
		}
	}
	if !kw.Empty() {
		t.Fatalf("expected Empty()")
	}
}

func TestExtractKeywordsIgnoresPunctuatedTerms(t *testing.T) {
	for _, text := range []string{"I got a C in chemistry", "plan c", "e learning"} {
		kw := ExtractKeywords(text)
		if len(kw[CategoryTech]) != 0 {
			t.Fatalf("%q: tech=%v want none", text, kw[CategoryTech])
		}
	}
	if got := DetectIntent("I got a C in chemistry"); got == IntentTechInterest {
		t.Fatalf("single letter should not read as tech interest")
	}
	if InVocabulary(CategoryTech, "c") || InVocabulary(CategoryEducation, "elearning") {
		t.Fatalf("punctuated terms should not be collapsed into the vocabulary")
	}
}
