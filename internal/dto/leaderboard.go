package dto

import "time"

type MinimalCandidateDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	School string `json:"school"`
}

type LeaderboardEntryDTO struct {
	Candidate  MinimalCandidateDTO `json:"candidate"`
	TotalScore float64             `json:"total_score"`
}

type LeaderboardDTO struct {
	PublishedAt time.Time             `json:"published_at"`
	Leaderboard []LeaderboardEntryDTO `json:"leaderboard"`
}

type LeaderboardPublishDTO struct {
	Message     string    `json:"message"`
	PublishedAt time.Time `json:"published_at"`
	Entries     int       `json:"entries"`
}
