package model

import "time"

// Resource kinds the prompt asks the model to use. The field itself is free text.
const (
	ResourceVideo         = "video"
	ResourceArticle       = "article"
	ResourceDocumentation = "documentation"
	ResourcePractice      = "practice"
)

// LearnerProfile is the validated generation input.
// swagger:model LearnerProfile
type LearnerProfile struct {
	CurrentSkills          string `json:"current_skills" binding:"required" validate:"required"`
	TargetGoal             string `json:"target_goal" binding:"required" validate:"required"`
	HoursPerWeek           int    `json:"hours_per_week" binding:"required,min=1,max=40" validate:"min=1,max=40"`
	DurationWeeks          int    `json:"duration_weeks" binding:"required,min=1,max=52" validate:"min=1,max=52"`
	PreferredLearningStyle string `json:"preferred_learning_style,omitempty"`
}

// swagger:model ResourceRef
type ResourceRef struct {
	Title         string `json:"title"`
	Type          string `json:"type"`
	SearchQuery   string `json:"search_query"`
	EstimatedTime string `json:"estimated_time"`
}

// swagger:model WeekPlan
type WeekPlan struct {
	WeekNumber           int           `json:"week_number" validate:"min=1"`
	Topic                string        `json:"topic" validate:"required"`
	Subtopics            []string      `json:"subtopics"`
	WhyThisFirst         string        `json:"why_this_first"`
	PrerequisitesCovered []string      `json:"prerequisites_covered"`
	Resources            []ResourceRef `json:"resources" validate:"dive"`
	EstimatedHours       float64       `json:"estimated_hours" validate:"min=0"`
	KeyTakeaways         []string      `json:"key_takeaways"`
}

// swagger:model LearningPath
type LearningPath struct {
	ID              string         `json:"id,omitempty"`
	UserInput       LearnerProfile `json:"user_input"`
	PathTitle       string         `json:"path_title" validate:"required"`
	TotalWeeks      int            `json:"total_weeks" validate:"min=1"`
	TotalHours      float64        `json:"total_hours" validate:"min=0"`
	WeeklyBreakdown []WeekPlan     `json:"weekly_breakdown" validate:"min=1,dive"`
	FinalProject    string         `json:"final_project"`
	CreatedAt       time.Time      `json:"created_at"`
}

// LearningPathResponse is the result of a generation attempt. Success is
// false only when nothing usable was produced.
// swagger:model LearningPathResponse
type LearningPathResponse struct {
	Success      bool          `json:"success"`
	LearningPath *LearningPath `json:"learning_path,omitempty"`
	Message      string        `json:"message"`
	Saved        bool          `json:"saved"`
	FromCache    bool          `json:"from_cache"`
}

// LearningPathList is the list endpoint body.
type LearningPathList struct {
	Success       bool           `json:"success"`
	Count         int            `json:"count"`
	LearningPaths []LearningPath `json:"learning_paths"`
}
