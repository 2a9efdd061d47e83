package repository

import "github.com/mergington/activities/internal/domain/model"

// DefaultSeed returns the activities the registry starts with on boot.
// Names are unique map keys; rosters list already-enrolled students.
func DefaultSeed() map[string]model.Activity {
	return map[string]model.Activity{
		"Basketball": {
			Description:     "Team sport focusing on basketball skills and competitive play",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Learn tennis techniques and participate in friendly matches",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "sarah@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Stage performances, acting techniques, and theatrical productions",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"isabella@mergington.edu"},
		},
		"Visual Arts": {
			Description:     "Painting, drawing, sculpture, and other visual art forms",
			Schedule:        "Mondays, Wednesdays, Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu", "lucas@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills through competitive debate",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"noah@mergington.edu"},
		},
		"Science Club": {
			Description:     "Explore scientific concepts through experiments and research projects",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
