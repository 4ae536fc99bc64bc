package models

// Settings is the persisted game configuration
type Settings struct {
	GameMode       GameMode `json:"gameMode"`
	SubMode        SubMode  `json:"subMode"`
	TimerDuration  int      `json:"timerDuration"` // seconds
	SpyCount       int      `json:"spyCount"`
	TargetScore    int      `json:"targetScore"`
	CategoryFilter string   `json:"selectedCategoryFilter"` // category name or "random"
}
