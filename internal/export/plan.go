// Package export builds the downloadable career plan and renders it as a PDF.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yoockh/careercounsel/internal/models"
)

const planIntro = "Based on your interests and our conversation, I've prepared this personalized career plan for you. " +
	"This document outlines the key steps and resources to help you pursue a career as a:"

// NextSteps closes every plan.
var NextSteps = []string{
	"Research educational programs or courses related to this field",
	"Connect with professionals in this industry through LinkedIn or professional organizations",
	"Start building relevant skills through online courses or personal projects",
	"Update your resume to highlight transferable skills and experiences",
	"Set specific, measurable goals for the next 3-6 months",
}

type Fact struct {
	Label string
	Value string
}

type PlanStep struct {
	Number      int
	Title       string
	Duration    string
	Description string
}

// PlanDocument is the content of a plan, independent of how it is rendered.
type PlanDocument struct {
	GeneratedOn string
	Greeting    string
	Intro       string
	Title       string
	Overview    string
	Facts       []Fact
	Skills      []string
	Roadmap     []PlanStep
	NextSteps   []string
}

func BuildPlan(rec *models.CareerRecord, profile models.UserProfile, now time.Time) PlanDocument {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = "there"
	}

	doc := PlanDocument{
		GeneratedOn: now.Format("January 02, 2006"),
		Greeting:    "Hello " + name + ",",
		Intro:       planIntro,
		Title:       rec.Title,
		Overview:    rec.Description,
		Facts: []Fact{
			{Label: "Average Salary", Value: FormatSalary(rec.Salary)},
			{Label: "Growth Rate", Value: FormatGrowth(rec.GrowthRate)},
			{Label: "Typical Education", Value: rec.EducationLevel},
			{Label: "Field", Value: rec.FieldName},
		},
		Skills:    append([]string{}, rec.Skills...),
		NextSteps: append([]string{}, NextSteps...),
	}
	for i, s := range rec.Roadmap {
		doc.Roadmap = append(doc.Roadmap, PlanStep{
			Number:      i + 1,
			Title:       s.Title,
			Duration:    s.Duration,
			Description: s.Description,
		})
	}
	return doc
}

// FormatSalary renders 95000 as "$95,000/year".
func FormatSalary(salary int64) string {
	return "$" + groupThousands(salary) + "/year"
}

// FormatGrowth renders a 0.22 fraction as "22.0%".
func FormatGrowth(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}
