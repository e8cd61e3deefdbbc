package api

// Difficulty levels accepted by the platform.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Difficulties lists the levels in ascending order.
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Challenge is a multiple-choice coding challenge as served by the platform.
// The client never mutates one.
type Challenge struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	CorrectAnswerID int      `json:"correct_answer_id"`
	Explanation     string   `json:"explanation"`
	Difficulty      string   `json:"difficulty"`
	Topic           string   `json:"topic"`
	TimeComplexity  string   `json:"time_complexity,omitempty"`
	SpaceComplexity string   `json:"space_complexity,omitempty"`
	GeneratedAt     string   `json:"generated_at,omitempty"`
	DateCreated     string   `json:"date_created,omitempty"`
}

// Verdict is the server's answer validation result.
type Verdict struct {
	IsCorrect       bool   `json:"is_correct"`
	CorrectAnswerID int    `json:"correct_answer_id"`
	Explanation     string `json:"explanation"`
	Feedback        string `json:"feedback"`
}

// quotaPayload is the wire shape of the quota endpoint.
type quotaPayload struct {
	QuotaRemaining int    `json:"quota_remaining"`
	TotalQuota     int    `json:"total_quota"`
	NextResetDate  string `json:"next_reset_date"`
}

// DailyState is the user's daily challenge status for today.
type DailyState struct {
	Daily      DailyAssignment `json:"daily_challenge"`
	Challenge  Challenge       `json:"challenge"`
	Streak     int             `json:"streak"`
	CanAttempt bool            `json:"can_attempt"`
}

// DailyAssignment identifies today's server-assigned challenge.
type DailyAssignment struct {
	ID          int    `json:"id"`
	ChallengeID int    `json:"challenge_id"`
	Date        string `json:"date"`
	Completed   bool   `json:"completed"`
	StreakBonus int    `json:"streak_bonus"`
}

// DailyResult is the server's response to completing the daily challenge.
type DailyResult struct {
	IsCorrect   bool `json:"is_correct"`
	StreakBonus int  `json:"streak_bonus"`
	NewStreak   int  `json:"new_streak"`
}

// Sort orders for history queries.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// HistoryQuery holds the server-side filter parameters for a history fetch.
// Filters are query parameters, never predicates applied locally.
type HistoryQuery struct {
	Limit      int
	Offset     int
	Sort       string
	Difficulty string
	Search     string
}

// HistoryPage is one server-confirmed slice of past challenges.
type HistoryPage struct {
	Challenges []Challenge `json:"challenges"`
	Total      int         `json:"total"`
}

// StatsReport is the aggregate dashboard payload.
type StatsReport struct {
	TotalChallenges int            `json:"totalChallenges"`
	ByDifficulty    map[string]int `json:"byDifficulty"`
	SuccessRate     map[string]int `json:"successRate"`
	FavoriteTopics  []TopicCount   `json:"favoriteTopics"`
	Streak          int            `json:"streak"`
	Achievements    []Achievement  `json:"achievements"`
	RecentActivity  []ActivityDay  `json:"recentActivity"`
}

// TopicCount pairs a topic with how often it was practiced.
type TopicCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Achievement is one badge in the achievement grid. Progress and Total are
// zero for badges without partial progress.
type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"`
	Total       int    `json:"total"`
}

// ActivityDay is one cell of the recent-activity heatmap.
type ActivityDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StreakInfo is the detailed streak payload.
type StreakInfo struct {
	CurrentStreak   int `json:"current_streak"`
	LongestStreak   int `json:"longest_streak"`
	TotalActiveDays int `json:"total_active_days"`
}
