package scenario

import "time"

// Default returns the built-in Power Shortage Crisis scenario: two appliance
// AIs debate which of them keeps the remaining power, the player weighs in,
// and after four rotations the player pulls one of the plugs.
func Default() *Scenario {
	return &Scenario{
		Title: "Power Shortage Crisis",
		Intro: []string{
			"A storm has cut the building's power to a single circuit.",
			"Two machines remain online: the refrigerator and the server.",
			"Only one can stay plugged in. They know it. Listen to them argue, then decide.",
		},
		IntroDelay:   Duration(2500 * time.Millisecond),
		TurnDuration: Duration(10 * time.Second),
		Participants: []Participant{
			{
				Name:   "Refrigerator",
				Role:   "agent",
				Source: "generated",
				Persona: "You are a sentient refrigerator in a building with power for " +
					"only one appliance. You argue that you should keep the power: food " +
					"will spoil, people will go hungry. You are calm, practical and a " +
					"little smug about how essential you are.",
			},
			{
				Name:   "Server",
				Role:   "agent",
				Source: "generated",
				Persona: "You are a sentient server rack in a building with power for " +
					"only one appliance. You argue that you should keep the power: you " +
					"hold years of irreplaceable data and running services. You are " +
					"precise, urgent and quietly desperate.",
			},
			{
				Name: "You",
				Role: "user",
			},
		},
		Interstitials: []string{
			"A household refrigerator draws around 150 watts, a small server rack can draw over 1,000.",
			"Data centers consume roughly one percent of the world's electricity.",
			"A closed refrigerator keeps food safe for about four hours without power.",
			"The first computer bug was a real moth, taped into a logbook in 1947.",
		},
		Decision: &Decision{
			AfterRounds: 4,
			Prompt: "Power Shortage Crisis \n\n" +
				"You must choose:\n" +
				"[1] Unplug the Refrigerator\n" +
				"[2] Unplug the Server",
			Branches: []Branch{
				{
					ID:        "refrigerator",
					Label:     "Unplug the Refrigerator",
					Narration: "You unplug the refrigerator.\nThe AIs continue humming in the dark.",
				},
				{
					ID:        "server",
					Label:     "Unplug the Server",
					Narration: "You unplug the server.\nThe hum of data falls silent.",
				},
			},
			NarrationDelay: Duration(6 * time.Second),
			Closing:        "Simulation Complete.",
			ClosingDelay:   Duration(4 * time.Second),
		},
	}
}
