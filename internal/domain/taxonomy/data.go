package taxonomy

// Official SDG colors and target texts as published on sdgs.un.org.
var goals = []Goal{
	{
		ID:    1,
		Name:  "No Poverty",
		Color: "#E5243B",
		URL:   "https://sdgs.un.org/goals/goal1",
		Targets: []Target{
			{ID: "1.1", Name: "Eradicate extreme poverty", URL: "https://sdgs.un.org/goals/goal1#targets"},
			{ID: "1.2", Name: "Reduce poverty by at least 50%", URL: "https://sdgs.un.org/goals/goal1#targets"},
			{ID: "1.3", Name: "Implement social protection systems", URL: "https://sdgs.un.org/goals/goal1#targets"},
			{ID: "1.4", Name: "Equal rights to ownership, basic services", URL: "https://sdgs.un.org/goals/goal1#targets"},
			{ID: "1.5", Name: "Build resilience to environmental threats", URL: "https://sdgs.un.org/goals/goal1#targets"},
		},
	},
	{
		ID:    2,
		Name:  "Zero Hunger",
		Color: "#DDA63A",
		URL:   "https://sdgs.un.org/goals/goal2",
		Targets: []Target{
			{ID: "2.1", Name: "Universal access to safe food", URL: "https://sdgs.un.org/goals/goal2#targets"},
			{ID: "2.2", Name: "End all forms of malnutrition", URL: "https://sdgs.un.org/goals/goal2#targets"},
			{ID: "2.3", Name: "Double agricultural productivity", URL: "https://sdgs.un.org/goals/goal2#targets"},
			{ID: "2.4", Name: "Sustainable food production", URL: "https://sdgs.un.org/goals/goal2#targets"},
			{ID: "2.5", Name: "Maintain genetic diversity in food", URL: "https://sdgs.un.org/goals/goal2#targets"},
		},
	},
	{
		ID:    3,
		Name:  "Good Health and Well-being",
		Color: "#4C9F38",
		URL:   "https://sdgs.un.org/goals/goal3",
		Targets: []Target{
			{ID: "3.1", Name: "Reduce maternal mortality", URL: "https://sdgs.un.org/goals/goal3#targets"},
			{ID: "3.2", Name: "End preventable deaths under 5 years of age", URL: "https://sdgs.un.org/goals/goal3#targets"},
			{ID: "3.3", Name: "Fight communicable diseases", URL: "https://sdgs.un.org/goals/goal3#targets"},
			{ID: "3.4", Name: "Reduce mortality from non-communicable diseases", URL: "https://sdgs.un.org/goals/goal3#targets"},
			{ID: "3.5", Name: "Prevent and treat substance abuse", URL: "https://sdgs.un.org/goals/goal3#targets"},
		},
	},
	{
		ID:    4,
		Name:  "Quality Education",
		Color: "#C5192D",
		URL:   "https://sdgs.un.org/goals/goal4",
		Targets: []Target{
			{ID: "4.1", Name: "Free primary and secondary education", URL: "https://sdgs.un.org/goals/goal4#targets"},
			{ID: "4.2", Name: "Equal access to quality pre-primary education", URL: "https://sdgs.un.org/goals/goal4#targets"},
			{ID: "4.3", Name: "Equal access to affordable technical education", URL: "https://sdgs.un.org/goals/goal4#targets"},
			{ID: "4.4", Name: "Increase the number of people with relevant skills", URL: "https://sdgs.un.org/goals/goal4#targets"},
			{ID: "4.5", Name: "Eliminate all discrimination in education", URL: "https://sdgs.un.org/goals/goal4#targets"},
		},
	},
	{
		ID:    5,
		Name:  "Gender Equality",
		Color: "#FF3A21",
		URL:   "https://sdgs.un.org/goals/goal5",
		Targets: []Target{
			{ID: "5.1", Name: "End discrimination against women", URL: "https://sdgs.un.org/goals/goal5#targets"},
			{ID: "5.2", Name: "End all violence against women", URL: "https://sdgs.un.org/goals/goal5#targets"},
			{ID: "5.3", Name: "Eliminate forced marriages and genital mutilation", URL: "https://sdgs.un.org/goals/goal5#targets"},
			{ID: "5.4", Name: "Value unpaid care and promote shared responsibility", URL: "https://sdgs.un.org/goals/goal5#targets"},
			{ID: "5.5", Name: "Ensure full participation in leadership and decision-making", URL: "https://sdgs.un.org/goals/goal5#targets"},
		},
	},
	{
		ID:    6,
		Name:  "Clean Water and Sanitation",
		Color: "#26BDE2",
		URL:   "https://sdgs.un.org/goals/goal6",
		Targets: []Target{
			{ID: "6.1", Name: "Safe and affordable drinking water", URL: "https://sdgs.un.org/goals/goal6#targets"},
			{ID: "6.2", Name: "End open defecation and provide access to sanitation", URL: "https://sdgs.un.org/goals/goal6#targets"},
			{ID: "6.3", Name: "Improve water quality, wastewater treatment", URL: "https://sdgs.un.org/goals/goal6#targets"},
			{ID: "6.4", Name: "Increase water-use efficiency", URL: "https://sdgs.un.org/goals/goal6#targets"},
			{ID: "6.5", Name: "Implement integrated water resources management", URL: "https://sdgs.un.org/goals/goal6#targets"},
		},
	},
	{
		ID:    7,
		Name:  "Affordable and Clean Energy",
		Color: "#FCC30B",
		URL:   "https://sdgs.un.org/goals/goal7",
		Targets: []Target{
			{ID: "7.1", Name: "Universal access to modern energy", URL: "https://sdgs.un.org/goals/goal7#targets"},
			{ID: "7.2", Name: "Increase global percentage of renewable energy", URL: "https://sdgs.un.org/goals/goal7#targets"},
			{ID: "7.3", Name: "Double the improvement in energy efficiency", URL: "https://sdgs.un.org/goals/goal7#targets"},
			{ID: "7.A", Name: "Promote access to research, technology and investments", URL: "https://sdgs.un.org/goals/goal7#targets"},
			{ID: "7.B", Name: "Expand and upgrade energy services for developing countries", URL: "https://sdgs.un.org/goals/goal7#targets"},
		},
	},
	{
		ID:    8,
		Name:  "Decent Work and Economic Growth",
		Color: "#A21942",
		URL:   "https://sdgs.un.org/goals/goal8",
		Targets: []Target{
			{ID: "8.1", Name: "Sustainable economic growth", URL: "https://sdgs.un.org/goals/goal8#targets"},
			{ID: "8.2", Name: "Diversify, innovate and upgrade for economic productivity", URL: "https://sdgs.un.org/goals/goal8#targets"},
			{ID: "8.3", Name: "Promote policies to support job creation", URL: "https://sdgs.un.org/goals/goal8#targets"},
			{ID: "8.4", Name: "Improve resource efficiency in consumption and production", URL: "https://sdgs.un.org/goals/goal8#targets"},
			{ID: "8.5", Name: "Full employment and decent work with equal pay", URL: "https://sdgs.un.org/goals/goal8#targets"},
		},
	},
	{
		ID:    9,
		Name:  "Industry, Innovation and Infrastructure",
		Color: "#FD6925",
		URL:   "https://sdgs.un.org/goals/goal9",
		Targets: []Target{
			{ID: "9.1", Name: "Develop sustainable, resilient infrastructure", URL: "https://sdgs.un.org/goals/goal9#targets"},
			{ID: "9.2", Name: "Promote inclusive and sustainable industrialization", URL: "https://sdgs.un.org/goals/goal9#targets"},
			{ID: "9.3", Name: "Increase access to financial services and markets", URL: "https://sdgs.un.org/goals/goal9#targets"},
			{ID: "9.4", Name: "Upgrade all industries for sustainability", URL: "https://sdgs.un.org/goals/goal9#targets"},
			{ID: "9.5", Name: "Enhance research and upgrade industrial technologies", URL: "https://sdgs.un.org/goals/goal9#targets"},
		},
	},
	{
		ID:    10,
		Name:  "Reduced Inequalities",
		Color: "#DD1367",
		URL:   "https://sdgs.un.org/goals/goal10",
		Targets: []Target{
			{ID: "10.1", Name: "Reduce income inequalities", URL: "https://sdgs.un.org/goals/goal10#targets"},
			{ID: "10.2", Name: "Promote universal social, economic and political inclusion", URL: "https://sdgs.un.org/goals/goal10#targets"},
			{ID: "10.3", Name: "Ensure equal opportunities and end discrimination", URL: "https://sdgs.un.org/goals/goal10#targets"},
			{ID: "10.4", Name: "Adopt fiscal and social policies that promote equality", URL: "https://sdgs.un.org/goals/goal10#targets"},
			{ID: "10.5", Name: "Improve regulation of global financial markets", URL: "https://sdgs.un.org/goals/goal10#targets"},
		},
	},
	{
		ID:    11,
		Name:  "Sustainable Cities and Communities",
		Color: "#FD9D24",
		URL:   "https://sdgs.un.org/goals/goal11",
		Targets: []Target{
			{ID: "11.1", Name: "Safe and affordable housing", URL: "https://sdgs.un.org/goals/goal11#targets"},
			{ID: "11.2", Name: "Affordable and sustainable transport systems", URL: "https://sdgs.un.org/goals/goal11#targets"},
			{ID: "11.3", Name: "Inclusive and sustainable urbanization", URL: "https://sdgs.un.org/goals/goal11#targets"},
			{ID: "11.4", Name: "Protect the world's cultural and natural heritage", URL: "https://sdgs.un.org/goals/goal11#targets"},
			{ID: "11.5", Name: "Reduce the adverse effects of natural disasters", URL: "https://sdgs.un.org/goals/goal11#targets"},
		},
	},
	{
		ID:    12,
		Name:  "Responsible Consumption and Production",
		Color: "#BF8B2E",
		URL:   "https://sdgs.un.org/goals/goal12",
		Targets: []Target{
			{ID: "12.1", Name: "Implement the 10-Year Framework on Sustainable Consumption and Production", URL: "https://sdgs.un.org/goals/goal12#targets"},
			{ID: "12.2", Name: "Sustainable management and use of natural resources", URL: "https://sdgs.un.org/goals/goal12#targets"},
			{ID: "12.3", Name: "Halve global per capita food waste", URL: "https://sdgs.un.org/goals/goal12#targets"},
			{ID: "12.4", Name: "Responsible management of chemicals and waste", URL: "https://sdgs.un.org/goals/goal12#targets"},
			{ID: "12.5", Name: "Substantially reduce waste generation", URL: "https://sdgs.un.org/goals/goal12#targets"},
		},
	},
	{
		ID:    13,
		Name:  "Climate Action",
		Color: "#3F7E44",
		URL:   "https://sdgs.un.org/goals/goal13",
		Targets: []Target{
			{ID: "13.1", Name: "Strengthen resilience to climate-related hazards", URL: "https://sdgs.un.org/goals/goal13#targets"},
			{ID: "13.2", Name: "Integrate climate change measures into policies", URL: "https://sdgs.un.org/goals/goal13#targets"},
			{ID: "13.3", Name: "Build knowledge on climate change", URL: "https://sdgs.un.org/goals/goal13#targets"},
			{ID: "13.A", Name: "Implement the UN Framework Convention on Climate Change", URL: "https://sdgs.un.org/goals/goal13#targets"},
			{ID: "13.B", Name: "Promote mechanisms to raise capacity for climate planning", URL: "https://sdgs.un.org/goals/goal13#targets"},
		},
	},
	{
		ID:    14,
		Name:  "Life Below Water",
		Color: "#0A97D9",
		URL:   "https://sdgs.un.org/goals/goal14",
		Targets: []Target{
			{ID: "14.1", Name: "Reduce marine pollution", URL: "https://sdgs.un.org/goals/goal14#targets"},
			{ID: "14.2", Name: "Protect and restore ecosystems", URL: "https://sdgs.un.org/goals/goal14#targets"},
			{ID: "14.3", Name: "Reduce ocean acidification", URL: "https://sdgs.un.org/goals/goal14#targets"},
			{ID: "14.4", Name: "Sustainable fishing", URL: "https://sdgs.un.org/goals/goal14#targets"},
			{ID: "14.5", Name: "Conserve coastal and marine areas", URL: "https://sdgs.un.org/goals/goal14#targets"},
		},
	},
	{
		ID:    15,
		Name:  "Life on Land",
		Color: "#56C02B",
		URL:   "https://sdgs.un.org/goals/goal15",
		Targets: []Target{
			{ID: "15.1", Name: "Conserve and restore terrestrial ecosystems", URL: "https://sdgs.un.org/goals/goal15#targets"},
			{ID: "15.2", Name: "End deforestation and restore degraded forests", URL: "https://sdgs.un.org/goals/goal15#targets"},
			{ID: "15.3", Name: "End desertification and restore degraded land", URL: "https://sdgs.un.org/goals/goal15#targets"},
			{ID: "15.4", Name: "Ensure conservation of mountain ecosystems", URL: "https://sdgs.un.org/goals/goal15#targets"},
			{ID: "15.5", Name: "Protect biodiversity and natural habitats", URL: "https://sdgs.un.org/goals/goal15#targets"},
		},
	},
	{
		ID:    16,
		Name:  "Peace, Justice and Strong Institutions",
		Color: "#00689D",
		URL:   "https://sdgs.un.org/goals/goal16",
		Targets: []Target{
			{ID: "16.1", Name: "Reduce violence everywhere", URL: "https://sdgs.un.org/goals/goal16#targets"},
			{ID: "16.2", Name: "End abuse, exploitation, trafficking and violence against children", URL: "https://sdgs.un.org/goals/goal16#targets"},
			{ID: "16.3", Name: "Promote the rule of law and ensure equal access to justice", URL: "https://sdgs.un.org/goals/goal16#targets"},
			{ID: "16.4", Name: "Combat organized crime and illicit financial flows", URL: "https://sdgs.un.org/goals/goal16#targets"},
			{ID: "16.5", Name: "Substantially reduce corruption and bribery", URL: "https://sdgs.un.org/goals/goal16#targets"},
		},
	},
	{
		ID:    17,
		Name:  "Partnerships for the Goals",
		Color: "#19486A",
		URL:   "https://sdgs.un.org/goals/goal17",
		Targets: []Target{
			{ID: "17.1", Name: "Strengthen domestic resource mobilization", URL: "https://sdgs.un.org/goals/goal17#targets"},
			{ID: "17.2", Name: "Implement all development assistance commitments", URL: "https://sdgs.un.org/goals/goal17#targets"},
			{ID: "17.3", Name: "Mobilize financial resources for developing countries", URL: "https://sdgs.un.org/goals/goal17#targets"},
			{ID: "17.4", Name: "Assist developing countries in attaining debt sustainability", URL: "https://sdgs.un.org/goals/goal17#targets"},
			{ID: "17.5", Name: "Invest in least-developed countries", URL: "https://sdgs.un.org/goals/goal17#targets"},
		},
	},
}
