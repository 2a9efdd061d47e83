package model

// RegistryStats summarizes the running service for the stats endpoint.
type RegistryStats struct {
	Started      bool `json:"started"`
	Activities   int  `json:"activities"`
	Participants int  `json:"participants"`
}
