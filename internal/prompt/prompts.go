// Package prompt renders generation requests into model instructions. Every
// function is pure: any input, including empty strings, yields a prompt.
package prompt

import (
	"fmt"
	"strings"

	"smart_learning_path/internal/model"
)

const defaultLearningStyle = "mixed"

const learningPathTemplate = `You are an expert academic counselor and curriculum designer. Create a personalized, time-bound learning roadmap.

USER PROFILE:
- Current Skills: %s
- Target Goal: %s
- Time Commitment: %d hours/week for %d weeks
- Learning Style: %s

REQUIREMENTS:
1. Break down the path into weekly modules that fit within the time constraint
2. For EACH week, provide:
   - A clear topic with 3-5 subtopics
   - "Why this first?" explanation showing prerequisite reasoning
   - Specific, actionable search queries for resources (not generic links)
   - Estimated study time
   - Key takeaways

3. Ensure logical progression: Week N must build on Week N-1
4. Number the weeks 1 to %d with no gaps
5. Include a final capstone project related to their goal

OUTPUT FORMAT (JSON):
{
  "path_title": "From [current_skills] to [target_goal]",
  "total_weeks": %d,
  "total_hours": %d,
  "weekly_breakdown": [
    {
      "week_number": 1,
      "topic": "...",
      "subtopics": ["...", "..."],
      "why_this_first": "...",
      "prerequisites_covered": ["..."],
      "resources": [
        {
          "title": "...",
          "type": "video/article/documentation/practice",
          "search_query": "Search YouTube for: '...'",
          "estimated_time": "2 hours"
        }
      ],
      "estimated_hours": 6.0,
      "key_takeaways": ["...", "..."]
    }
  ],
  "final_project": "..."
}

IMPORTANT: Return ONLY valid JSON, no markdown or extra text.`

const quizTemplate = `Generate %d multiple-choice questions for Week %d covering: %s

Each question should:
- Test practical understanding, not just memorization
- Have %d options with only 1 correct answer
- Include an explanation for the correct answer

OUTPUT FORMAT (JSON):
{
  "questions": [
    {
      "question": "...",
      "options": [
        {"text": "...", "is_correct": false},
        {"text": "...", "is_correct": true},
        {"text": "...", "is_correct": false},
        {"text": "...", "is_correct": false}
      ],
      "explanation": "..."
    }
  ]
}

Return ONLY valid JSON.`

// QuizQuestionCount is how many questions the quiz prompt asks for.
const QuizQuestionCount = 5

// LearningPath renders the roadmap instruction for a learner profile.
func LearningPath(p model.LearnerProfile) string {
	style := p.PreferredLearningStyle
	if strings.TrimSpace(style) == "" {
		style = defaultLearningStyle
	}
	return fmt.Sprintf(learningPathTemplate,
		p.CurrentSkills,
		p.TargetGoal,
		p.HoursPerWeek,
		p.DurationWeeks,
		style,
		p.DurationWeeks,
		p.DurationWeeks,
		p.HoursPerWeek*p.DurationWeeks,
	)
}

// Quiz renders the quiz instruction for one week's topics.
func Quiz(weekNumber int, topics []string) string {
	return fmt.Sprintf(quizTemplate,
		QuizQuestionCount,
		weekNumber,
		strings.Join(topics, ", "),
		model.QuizOptionsPerQuestion,
	)
}
