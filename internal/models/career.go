package models

type CareerField struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Description string `gorm:"column:description" json:"description"`
}

func (CareerField) TableName() string { return "career_fields" }

type Career struct {
	ID             uint    `gorm:"column:id;primaryKey" json:"id"`
	FieldID        uint    `gorm:"column:field_id;not null;index" json:"field_id"`
	Title          string  `gorm:"column:title;not null;uniqueIndex" json:"title"`
	Description    string  `gorm:"column:description" json:"description"`
	Salary         int64   `gorm:"column:salary" json:"salary"`
	GrowthRate     float64 `gorm:"column:growth_rate" json:"growth_rate"` // fraction, 0.22 == 22%
	EducationLevel string  `gorm:"column:education_level" json:"education_level"`

	Field *CareerField `gorm:"foreignKey:FieldID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Career) TableName() string { return "careers" }

type CareerSkill struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"id"`
	CareerID   uint   `gorm:"column:career_id;not null;index" json:"career_id"`
	Skill      string `gorm:"column:skill;not null" json:"skill"`
	Importance int    `gorm:"column:importance" json:"importance"`

	Career *Career `gorm:"foreignKey:CareerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CareerSkill) TableName() string { return "career_skills" }

type RoadmapStep struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	CareerID    uint   `gorm:"column:career_id;not null;uniqueIndex:idx_roadmap_career_order,priority:1" json:"-"`
	StepOrder   int    `gorm:"column:step_order;not null;uniqueIndex:idx_roadmap_career_order,priority:2" json:"step_order"`
	Title       string `gorm:"column:title;not null" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	Duration    string `gorm:"column:duration" json:"duration"`

	Career    *Career            `gorm:"foreignKey:CareerID;constraint:OnDelete:CASCADE" json:"-"`
	Resources []LearningResource `gorm:"foreignKey:StepID" json:"resources"`
}

func (RoadmapStep) TableName() string { return "roadmap_steps" }

type LearningResource struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"-"`
	StepID uint   `gorm:"column:step_id;not null;index" json:"-"`
	Title  string `gorm:"column:title;not null" json:"title"`
	URL    string `gorm:"column:url" json:"url"`
	Type   string `gorm:"column:resource_type" json:"type"`
	IsFree bool   `gorm:"column:is_free" json:"is_free"`

	Step *RoadmapStep `gorm:"foreignKey:StepID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LearningResource) TableName() string { return "learning_resources" }

// CareerRecord is a career with its field name, skills (most important
// first) and roadmap (by step order), read as one tree.
type CareerRecord struct {
	ID             uint          `json:"id"`
	Title          string        `json:"title"`
	FieldID        uint          `json:"field_id"`
	FieldName      string        `json:"field_name"`
	Description    string        `json:"description"`
	Salary         int64         `json:"salary"`
	GrowthRate     float64       `json:"growth_rate"`
	EducationLevel string        `json:"education_level"`
	Skills         []string      `json:"skills"`
	Roadmap        []RoadmapStep `json:"roadmap"`
}
