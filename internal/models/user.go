package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email;index" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

type UserInterest struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Interest  string    `gorm:"column:interest;not null" json:"interest"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserInterest) TableName() string { return "user_interests" }

type UserSentiment struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sentiment string    `gorm:"column:sentiment;not null" json:"sentiment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserSentiment) TableName() string { return "user_sentiment" }

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        uint           `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint           `gorm:"column:user_id;not null;index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Message   string         `gorm:"column:message;not null" json:"message"`
	Role      ChatRole       `gorm:"column:role;not null" json:"role"`
	Metadata  datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"` // intent, sentiment, keywords of the turn
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_history" }

type UserCareerSuggestion struct {
	ID             uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID         uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	User           *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CareerID       uint      `gorm:"column:career_id;not null;index" json:"career_id"`
	Career         *Career   `gorm:"foreignKey:CareerID;constraint:OnDelete:CASCADE" json:"-"`
	RelevanceScore float64   `gorm:"column:relevance_score" json:"relevance_score"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserCareerSuggestion) TableName() string { return "user_career_suggestions" }

type LearningGoal struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Category    string    `gorm:"column:category" json:"category"`
	Deadline    string    `gorm:"column:deadline" json:"deadline"` // YYYY-MM-DD
	Completed   bool      `gorm:"column:completed" json:"completed"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LearningGoal) TableName() string { return "learning_goals" }

type PersonalityResult struct {
	ID                  uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID              uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	User                *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TechnicalScore      int       `gorm:"column:technical_score" json:"technical_score"`
	CreativeScore       int       `gorm:"column:creative_score" json:"creative_score"`
	PeopleScore         int       `gorm:"column:people_score" json:"people_score"`
	AnalyticalScore     int       `gorm:"column:analytical_score" json:"analytical_score"`
	LeadershipScore     int       `gorm:"column:leadership_score" json:"leadership_score"`
	DetailOrientedScore int       `gorm:"column:detail_oriented_score" json:"detail_oriented_score"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PersonalityResult) TableName() string { return "personality_results" }
