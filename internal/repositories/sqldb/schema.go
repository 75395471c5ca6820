// Package sqldb is the relational store for the career catalog and the
// per-user activity logs. It runs on SQLite or Postgres through gorm.
package sqldb

import "github.com/yoockh/careercounsel/internal/models"

// Models lists every table, parents before children.
func Models() []any {
	return []any{
		&models.CareerField{},
		&models.Career{},
		&models.CareerSkill{},
		&models.RoadmapStep{},
		&models.LearningResource{},
		&models.User{},
		&models.UserInterest{},
		&models.UserSentiment{},
		&models.ChatMessage{},
		&models.UserCareerSuggestion{},
		&models.LearningGoal{},
		&models.PersonalityResult{},
	}
}
