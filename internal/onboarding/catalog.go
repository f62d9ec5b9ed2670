package onboarding

// DefaultQuestions returns the standard survey catalog, in page order.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID: "primary_goal",
			Options: []OptionID{
				"save_more",
				"pay_off_debt",
				"invest_better",
				"track_spending",
			},
		},
		{
			ID: "experience_level",
			Options: []OptionID{
				"beginner",
				"intermediate",
				"advanced",
			},
		},
		{
			ID: "spending_focus",
			Options: []OptionID{
				"essentials",
				"lifestyle",
				"subscriptions",
				"travel",
			},
		},
		{
			ID: "referral_source",
			Options: []OptionID{
				"app_store",
				"friend",
				"social_media",
				"web_search",
			},
		},
	}
}

// DefaultLanguages returns the fixed language catalog, in display order.
func DefaultLanguages() []LanguageOption {
	return []LanguageOption{
		{Code: "en", DisplayName: "English"},
		{Code: "es", DisplayName: "Español"},
		{Code: "de", DisplayName: "Deutsch"},
		{Code: "fr", DisplayName: "Français"},
	}
}

// QuestionByID finds a question by its ID. Returns nil if not found.
func QuestionByID(questions []Question, id QuestionID) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}

// LanguageByCode finds a language option by its code. Returns nil if not found.
func LanguageByCode(languages []LanguageOption, code string) *LanguageOption {
	for i := range languages {
		if languages[i].Code == code {
			return &languages[i]
		}
	}
	return nil
}
