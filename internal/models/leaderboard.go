package models

// LeaderboardEntry is the per-email projection computed over participants
// joined against winners: how often someone entered, how often they won, and
// what it paid out.
type LeaderboardEntry struct {
	Email          string  `bson:"_id" json:"email"`
	Name           string  `bson:"name" json:"name"`
	Participations int64   `bson:"participations" json:"participations"`
	Wins           int64   `bson:"wins" json:"wins"`
	TotalPrize     float64 `bson:"totalPrize" json:"totalPrize"`
	WinPercentage  float64 `bson:"winPercentage" json:"winPercentage"`
}

// ContestPage is a paginated slice of approved contests.
type ContestPage struct {
	Contests   []*Contest `json:"contests"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int64      `json:"totalPages"`
}
