package suggest

import (
	"strings"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

type category struct {
	name        string
	keywords    []string
	suggestions []dom.Suggestion
}

// categories is evaluated in order; the first keyword hit wins.
var categories = []category{
	{"party", []string{"party", "celebration"}, []dom.Suggestion{
		{Title: "Send invitations", Description: "Create and send out invitations to all guests."},
		{Title: "Plan the menu", Description: "Decide on food and drinks, and create a shopping list."},
		{Title: "Arrange decorations", Description: "Buy or create decorations to set the mood."},
		{Title: "Create a playlist", Description: "Compile a music playlist for the party atmosphere."},
	}},
	{"wedding", []string{"wedding", "marriage", "anniversary"}, []dom.Suggestion{
		{Title: "Plan the venue", Description: "Choose and book a suitable venue for the event."},
		{Title: "Create guest list", Description: "Compile and organize who will attend."},
		{Title: "Arrange catering", Description: "Book food and beverage services."},
		{Title: "Plan decorations and flowers", Description: "Select and arrange floral arrangements and décor."},
	}},
	{"vacation", []string{"vacation", "trip", "travel"}, []dom.Suggestion{
		{Title: "Book flights and accommodation", Description: "Find and book travel and lodging for the trip."},
		{Title: "Create an itinerary", Description: "Outline daily activities and sights to see."},
		{Title: "Pack luggage", Description: "Gather and pack all necessary clothing and items."},
		{Title: "Arrange for pet/house sitter", Description: "Organize care for your home and pets while away."},
	}},
	{"learning", []string{"learn", "skill", "course"}, []dom.Suggestion{
		{Title: "Research learning resources", Description: "Find books, online courses, and tutorials."},
		{Title: "Create a study schedule", Description: "Allocate specific times for learning and practice."},
		{Title: "Practice daily", Description: "Dedicate a small amount of time each day to practice."},
		{Title: "Find a mentor or community", Description: "Connect with others to get feedback and support."},
	}},
	{"fitness", []string{"fitness", "exercise", "workout"}, []dom.Suggestion{
		{Title: "Set fitness goals", Description: "Define specific and measurable fitness targets."},
		{Title: "Choose a workout routine", Description: "Select exercises that match your fitness level."},
		{Title: "Invest in equipment", Description: "Get necessary gym or home workout equipment."},
		{Title: "Track your progress", Description: "Monitor workouts, weight, and performance metrics."},
	}},
	{"nutrition", []string{"diet", "nutrition", "meal"}, []dom.Suggestion{
		{Title: "Plan weekly meals", Description: "Create a meal plan for the entire week."},
		{Title: "Create shopping list", Description: "Compile ingredients needed for your meals."},
		{Title: "Prep ingredients", Description: "Cut, cook, or prepare ingredients in advance."},
		{Title: "Track calories and nutrition", Description: "Monitor daily intake using apps or journals."},
	}},
	{"project", []string{"project", "build", "create"}, []dom.Suggestion{
		{Title: "Define project scope", Description: "Outline what needs to be done and deliverables."},
		{Title: "Create a timeline", Description: "Break down into phases and set deadlines."},
		{Title: "Gather resources", Description: "Collect materials, tools, and information needed."},
		{Title: "Execute and monitor", Description: "Start work and track progress regularly."},
	}},
	{"home", []string{"home", "organize", "clean"}, []dom.Suggestion{
		{Title: "Declutter rooms", Description: "Remove unnecessary items and organize spaces."},
		{Title: "Create storage solutions", Description: "Find or build storage for better organization."},
		{Title: "Deep clean", Description: "Thoroughly clean each room and surface."},
		{Title: "Arrange furniture", Description: "Rearrange furniture for better flow and aesthetics."},
	}},
	{"garden", []string{"garden", "plant", "grow"}, []dom.Suggestion{
		{Title: "Choose plants", Description: "Select plants suitable for your climate and space."},
		{Title: "Prepare soil", Description: "Prepare and enrich the soil for planting."},
		{Title: "Plant seeds or seedlings", Description: "Plant according to proper spacing and depth."},
		{Title: "Create maintenance schedule", Description: "Plan watering, weeding, and fertilizing routines."},
	}},
	{"business", []string{"business", "startup", "entrepreneurship"}, []dom.Suggestion{
		{Title: "Define business idea", Description: "Develop a clear business concept and value proposition."},
		{Title: "Research the market", Description: "Analyze competitors and identify target customers."},
		{Title: "Create business plan", Description: "Write a comprehensive business plan."},
		{Title: "Secure funding", Description: "Identify funding sources and apply for capital."},
	}},
	{"reading", []string{"reading", "book", "literature"}, []dom.Suggestion{
		{Title: "Choose books to read", Description: "Select books based on interests and recommendations."},
		{Title: "Create reading schedule", Description: "Set daily or weekly reading goals and times."},
		{Title: "Join a book club", Description: "Find or start a community to discuss books."},
		{Title: "Take notes and reflect", Description: "Document key takeaways and personal thoughts."},
	}},
	{"art", []string{"art", "creative", "draw", "paint"}, []dom.Suggestion{
		{Title: "Gather art supplies", Description: "Collect materials and tools needed for your art."},
		{Title: "Find inspiration", Description: "Look at references and create mood boards."},
		{Title: "Practice techniques", Description: "Work on fundamental skills through regular practice."},
		{Title: "Share your work", Description: "Exhibit or post your art for feedback."},
	}},
	{"music", []string{"music", "instrument", "sing"}, []dom.Suggestion{
		{Title: "Choose an instrument", Description: "Select an instrument and acquire it."},
		{Title: "Find a teacher", Description: "Look for music lessons or tutorials."},
		{Title: "Practice regularly", Description: "Set up a consistent practice schedule."},
		{Title: "Join a group or band", Description: "Collaborate with other musicians."},
	}},
	{"photography", []string{"photography", "camera"}, []dom.Suggestion{
		{Title: "Get a camera", Description: "Choose and purchase a suitable camera."},
		{Title: "Learn photography basics", Description: "Study composition, lighting, and exposure."},
		{Title: "Practice taking photos", Description: "Shoot regularly in different settings."},
		{Title: "Edit and share photos", Description: "Use editing software and build a portfolio."},
	}},
	{"health", []string{"health", "wellness", "sleep"}, []dom.Suggestion{
		{Title: "Schedule health checkup", Description: "Book appointments with healthcare professionals."},
		{Title: "Establish sleep routine", Description: "Create consistent bedtime and wake-up times."},
		{Title: "Reduce stress", Description: "Practice meditation, yoga, or relaxation techniques."},
		{Title: "Track health metrics", Description: "Monitor weight, blood pressure, and other indicators."},
	}},
	// "travel" is also a vacation keyword, which wins; explore/adventure land here.
	{"explore", []string{"travel", "explore", "adventure"}, []dom.Suggestion{
		{Title: "Research destinations", Description: "Explore travel guides and reviews."},
		{Title: "Plan budget", Description: "Calculate costs for accommodation, food, and activities."},
		{Title: "Book accommodations", Description: "Reserve hotels or alternative lodging."},
		{Title: "Create day plans", Description: "Organize activities and attractions to visit."},
	}},
	{"social", []string{"social", "connect", "network"}, []dom.Suggestion{
		{Title: "Join groups or clubs", Description: "Find communities based on shared interests."},
		{Title: "Attend events", Description: "Go to meetups, workshops, or social gatherings."},
		{Title: "Reach out to friends", Description: "Schedule time to catch up with people."},
		{Title: "Volunteer", Description: "Get involved in community service."},
	}},
	{"finance", []string{"finance", "budget", "save"}, []dom.Suggestion{
		{Title: "Track expenses", Description: "Record all spending to identify patterns."},
		{Title: "Create a budget", Description: "Allocate money to different categories."},
		{Title: "Set savings goal", Description: "Define target amounts and timelines for savings."},
		{Title: "Invest wisely", Description: "Research investment options and diversify portfolio."},
	}},
	{"career", []string{"career", "job", "promotion"}, []dom.Suggestion{
		{Title: "Update resume", Description: "Refine your resume with latest skills and experience."},
		{Title: "Search for opportunities", Description: "Browse job postings on various platforms."},
		{Title: "Network professionally", Description: "Attend conferences and connect with colleagues."},
		{Title: "Develop new skills", Description: "Take courses relevant to your career goals."},
	}},
}

var genericSuggestions = []dom.Suggestion{
	{Title: "Define the main objective", Description: "Clearly state the primary outcome you want to achieve."},
	{Title: "Break down into smaller steps", Description: "List all the individual actions required to reach the goal."},
	{Title: "Set a deadline", Description: "Establish a target date for completion to stay motivated."},
	{Title: "Gather resources", Description: "Collect tools, materials, or information you'll need."},
}

// Categorize returns the name of the first category whose keywords occur in
// goal, or "" for none.
func Categorize(goal string) string {
	if c := match(goal); c != nil {
		return c.name
	}
	return ""
}

func match(goal string) *category {
	g := strings.ToLower(goal)
	if strings.TrimSpace(g) == "" {
		return nil
	}
	for i := range categories {
		for _, kw := range categories[i].keywords {
			if strings.Contains(g, kw) {
				return &categories[i]
			}
		}
	}
	return nil
}

// Fallback returns the fixed suggestions for goal. It never fails.
func Fallback(goal string) []dom.Suggestion {
	list := genericSuggestions
	if c := match(goal); c != nil {
		list = c.suggestions
	}
	out := make([]dom.Suggestion, len(list))
	copy(out, list)
	return out
}
