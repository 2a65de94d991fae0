package usecase

const (
	defaultLookbackDays = 30
	maxImportBytes      = 5 << 20
)
