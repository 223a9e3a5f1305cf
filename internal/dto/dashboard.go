package dto

type ExamStatsDTO struct {
	ExamsTaken   int64   `json:"exams_taken"`
	AverageScore float64 `json:"average_score"`
	HighestScore float64 `json:"highest_score"`
}

type LeagueRankingDTO struct {
	Position   int     `json:"position"`
	TotalScore float64 `json:"total_score"`
}

type CandidateDashboardDTO struct {
	Profile        MinimalCandidateDTO `json:"profile"`
	Role           string              `json:"role"`
	ExamStats      ExamStatsDTO        `json:"exam_stats"`
	AvailableExams []ExamListDTO       `json:"available_exams"`
	RecentScores   []ScoreDTO          `json:"recent_scores"`
	LeagueRanking  *LeagueRankingDTO   `json:"league_ranking,omitempty"`
}

type CandidateStatsDTO struct {
	Total  int64            `json:"total"`
	ByRole map[string]int64 `json:"by_role"`
}

type ExamCountsDTO struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type QuestionStatsDTO struct {
	Total        int64            `json:"total"`
	ByDifficulty map[string]int64 `json:"by_difficulty"`
}

type ScoreStatsDTO struct {
	Total   int64   `json:"total"`
	Average float64 `json:"average"`
	Highest float64 `json:"highest"`
	Lowest  float64 `json:"lowest"`
}

type StaffDashboardDTO struct {
	Candidates     CandidateStatsDTO `json:"candidates"`
	Exams          ExamCountsDTO     `json:"exams"`
	Questions      QuestionStatsDTO  `json:"questions"`
	Scores         ScoreStatsDTO     `json:"scores"`
	RecentActivity []ScoreDTO        `json:"recent_activity"`
	UpcomingExams  []ExamListDTO     `json:"upcoming_exams"`
}
