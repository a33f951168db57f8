package model

// Level is a human-readable rating attached to a metric
type Level string

const (
	LevelLow       Level = "Low"
	LevelModerate  Level = "Moderate"
	LevelHigh      Level = "High"
	LevelVeryHigh  Level = "Very High"
	LevelExcellent Level = "Excellent"
	LevelVeryGood  Level = "Very Good"
	LevelGood      Level = "Good"
	LevelFair      Level = "Fair"
	LevelPoor      Level = "Poor"
	LevelVeryPoor  Level = "Very Poor"
	LevelTerrible  Level = "Terrible"
	LevelUnknown   Level = "Unknown"
)
