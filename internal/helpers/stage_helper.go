package helpers

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
	StageTest  = "test"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal, StageTest:
		return true
	default:
		return false
	}
}

// IsMockClockStage reports whether the stage runs against the persisted test clock.
func IsMockClockStage(stage string) bool {
	return stage == StageTest || stage == StageLocal
}
