package models

// ProfileSummary aggregates a learner's scheduling state and review history.
type ProfileSummary struct {
	TotalCards      int     `json:"total_cards"`
	DueCount        int     `json:"due_count"`
	NewCount        int     `json:"new_count"`
	LearningCount   int     `json:"learning_count"`
	ReviewCount     int     `json:"review_count"`
	RelearningCount int     `json:"relearning_count"`
	TotalReviews    int     `json:"total_reviews"`
	ReviewsToday    int     `json:"reviews_today"`
	TotalLapses     int     `json:"total_lapses"`
	LapseRate       float64 `json:"lapse_rate"`
}

// RatingCount is the number of logged reviews for one rating.
type RatingCount struct {
	Rating string `json:"rating"`
	Count  int    `json:"count"`
}

// DeckStat is per-deck card and due counts for a profile.
type DeckStat struct {
	DeckID    int64  `json:"deck_id"`
	DeckName  string `json:"deck_name"`
	CardCount int    `json:"card_count"`
	DueCount  int    `json:"due_count"`
}
