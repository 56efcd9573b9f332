package entities

// Settings is the singleton configuration record, persisted in its own file
// next to the state document.
type Settings struct {
	Culture  string `json:"culture" validate:"required"`
	Currency string `json:"currency" validate:"required"`
	Timezone string `json:"timezone" validate:"required"`
	LogLevel string `json:"logLevel"`
}
