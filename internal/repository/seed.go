package repository

import (
	"time"

	"github.com/google/uuid"

	"surveyforge/internal/model"
)

// BuiltinTemplates returns the predefined template library. Question ids are
// generated fresh per process; survey creation regenerates them again when a
// template is instantiated.
func BuiltinTemplates() []*model.Template {
	now := time.Now().UTC()

	templates := []*model.Template{
		{
			ID:          "customer-satisfaction",
			Name:        "Customer Satisfaction",
			Category:    "Customer Experience",
			Description: "Measure customer satisfaction with your products or services",
			Questions: []model.Question{
				{
					Type:        model.QuestionRating,
					Title:       "How would you rate your overall experience with our product/service?",
					Required:    true,
					Description: "On a scale of 1-5, with 5 being excellent",
					Scale:       &model.ScaleConfig{Size: 5, StartLabel: "Poor", EndLabel: "Excellent"},
				},
				{
					Type:     model.QuestionMultipleChoice,
					Title:    "How likely are you to recommend our product/service to others?",
					Required: true,
					Options:  []string{"Very likely", "Likely", "Neutral", "Unlikely", "Very unlikely"},
				},
				{
					Type:  model.QuestionText,
					Title: "What aspects of our product/service do you like the most?",
				},
				{
					Type:  model.QuestionText,
					Title: "How can we improve our product/service?",
				},
			},
		},
		{
			ID:          "employee-engagement",
			Name:        "Employee Engagement",
			Category:    "Employee Engagement",
			Description: "Measure employee satisfaction and engagement",
			Questions: []model.Question{
				{
					Type:        model.QuestionScale,
					Title:       "I feel valued at work",
					Required:    true,
					Description: "Scale from 1 (Strongly Disagree) to 5 (Strongly Agree)",
					Scale:       &model.ScaleConfig{Size: 5, StartLabel: "Strongly Disagree", EndLabel: "Strongly Agree"},
				},
				{
					Type:        model.QuestionScale,
					Title:       "I have the resources I need to do my job effectively",
					Required:    true,
					Description: "Scale from 1 (Strongly Disagree) to 5 (Strongly Agree)",
					Scale:       &model.ScaleConfig{Size: 5, StartLabel: "Strongly Disagree", EndLabel: "Strongly Agree"},
				},
				{
					Type:     model.QuestionMultipleChoice,
					Title:    "How satisfied are you with your work-life balance?",
					Required: true,
					Options:  []string{"Very Satisfied", "Satisfied", "Neutral", "Dissatisfied", "Very Dissatisfied"},
				},
				{
					Type:  model.QuestionText,
					Title: "What would make your work experience better?",
				},
			},
		},
		{
			ID:          "event-feedback",
			Name:        "Event Feedback",
			Category:    "Event",
			Description: "Collect feedback about an event",
			Questions: []model.Question{
				{
					Type:        model.QuestionRating,
					Title:       "How would you rate the overall event?",
					Required:    true,
					Description: "On a scale of 1-5, with 5 being excellent",
					Scale:       &model.ScaleConfig{Size: 5, StartLabel: "Poor", EndLabel: "Excellent"},
				},
				{
					Type:     model.QuestionMultipleChoice,
					Title:    "How satisfied were you with the venue?",
					Required: true,
					Options:  []string{"Very Satisfied", "Satisfied", "Neutral", "Dissatisfied", "Very Dissatisfied"},
				},
				{
					Type:     model.QuestionCheckbox,
					Title:    "Which sessions did you attend?",
					Required: true,
					Options:  []string{"Keynote", "Workshop A", "Workshop B", "Panel Discussion", "Networking Event"},
				},
				{
					Type:  model.QuestionText,
					Title: "What could we do to improve future events?",
				},
			},
		},
		{
			ID:          "market-research",
			Name:        "Market Research",
			Category:    "Market Research",
			Description: "Gather insights about market trends and customer preferences",
			Questions: []model.Question{
				{
					Type:     model.QuestionMultipleChoice,
					Title:    "How often do you use products/services like ours?",
					Required: true,
					Options:  []string{"Daily", "Weekly", "Monthly", "Rarely", "Never"},
				},
				{
					Type:     model.QuestionCheckbox,
					Title:    "Which features do you value most in a product/service like ours?",
					Required: true,
					Options:  []string{"Quality", "Price", "Customer Service", "Convenience", "Brand Reputation"},
				},
				{
					Type:     model.QuestionDropdown,
					Title:    "What is your age range?",
					Required: true,
					Options:  []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"},
				},
				{
					Type:  model.QuestionText,
					Title: "What improvements would make you more likely to choose our product/service?",
				},
			},
		},
		{
			ID:          "course-evaluation",
			Name:        "Course Evaluation",
			Category:    "Education",
			Description: "Collect feedback about a course or training program",
			Questions: []model.Question{
				{
					Type:        model.QuestionRating,
					Title:       "How would you rate the course content?",
					Required:    true,
					Description: "On a scale of 1-5, with 5 being excellent",
					Scale:       &model.ScaleConfig{Size: 5, StartLabel: "Poor", EndLabel: "Excellent"},
				},
				{
					Type:        model.QuestionRating,
					Title:       "How would you rate the instructor/facilitator?",
					Required:    true,
					Description: "On a scale of 1-5, with 5 being excellent",
					Scale:       &model.ScaleConfig{Size: 5, StartLabel: "Poor", EndLabel: "Excellent"},
				},
				{
					Type:        model.QuestionScale,
					Title:       "The course met my expectations",
					Required:    true,
					Description: "Scale from 1 (Strongly Disagree) to 5 (Strongly Agree)",
					Scale:       &model.ScaleConfig{Size: 5, StartLabel: "Strongly Disagree", EndLabel: "Strongly Agree"},
				},
				{
					Type:  model.QuestionText,
					Title: "What topics would you like to see covered in future courses?",
				},
			},
		},
	}

	for _, t := range templates {
		t.CreatedAt = now
		t.UpdatedAt = now
		for i := range t.Questions {
			t.Questions[i].ID = uuid.NewString()
		}
	}
	return templates
}
