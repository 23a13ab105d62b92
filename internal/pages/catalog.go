package pages

import "time"

// ID names a renderable screen.
type ID string

const (
	Landing     ID = "landing"
	SignUp      ID = "signup"
	SignIn      ID = "signin"
	Dashboard   ID = "dashboard"
	Blog        ID = "blog"
	Medications ID = "medications"
	Conditions  ID = "conditions"
	Activity    ID = "activity"
	Sleep       ID = "sleep"
	Hydration   ID = "hydration"
	Weight      ID = "weight"
	Vitals      ID = "vitals"
	Cycle       ID = "cycle"
	Symptoms    ID = "symptoms"
	Timeline    ID = "timeline"
	Assistant   ID = "assistant"
	NotFound    ID = "notfound"
)

type Stat struct {
	Title    string
	Subtitle string
	Value    string
	Unit     string
}

// Page is presentation-only content.
type Page struct {
	ID          ID
	Title       string
	Description string
	Affirmation string
	Stats       []Stat
	// Template is the view template that renders this page.
	Template string
}

var catalog = map[ID]Page{
	Landing: {
		ID:          Landing,
		Title:       "MedSyncAI",
		Description: "Track medications, vitals, sleep, and more, all in one place.",
		Template:    "landing.tmpl",
	},
	SignUp: {
		ID:          SignUp,
		Title:       "Create Your Account",
		Description: "Start your health journey today",
		Affirmation: "Taking care of yourself is a daily practice, not a destination.",
		Template:    "signup.tmpl",
	},
	SignIn: {
		ID:          SignIn,
		Title:       "Welcome Back",
		Description: "Sign in to continue to your health records",
		Template:    "signin.tmpl",
	},
	Dashboard: {
		ID:          Dashboard,
		Title:       "Dashboard",
		Description: "Here's your health summary. Take a moment to check in with yourself. Small steps lead to meaningful change.",
		Stats: []Stat{
			{Title: "Medications", Subtitle: "Today's adherence", Value: "3/4", Unit: "taken"},
			{Title: "Heart Rate", Subtitle: "Latest reading", Value: "72", Unit: "bpm"},
			{Title: "Sleep", Subtitle: "Last night", Value: "7.5", Unit: "hours"},
			{Title: "Hydration", Subtitle: "Today's intake", Value: "6", Unit: "glasses"},
			{Title: "Activity", Subtitle: "Steps today", Value: "6,234", Unit: "steps"},
		},
		Template: "page.tmpl",
	},
	Blog: {
		ID:          Blog,
		Title:       "Health & Wellness Blog",
		Description: "Explore evidence-based health articles to support your wellness journey.",
		Affirmation: "Knowledge is power when it comes to your health.",
		Template:    "blog.tmpl",
	},
	Medications: {
		ID:          Medications,
		Title:       "Medication Records",
		Description: "Medications work best when taken consistently and understood clearly. This section keeps a precise record of what you take, why you take it, and how regularly you're able to follow your schedule.",
		Affirmation: "Taking care of your health is a process, not a test. Every dose you take matters.",
		Template:    "page.tmpl",
	},
	Conditions: {
		ID:          Conditions,
		Title:       "Health Conditions",
		Description: "This section keeps track of the health conditions you're managing. It helps connect symptoms, medications, and lifestyle data into a clearer picture.",
		Affirmation: "Understanding your health makes you an active participant, not just a patient.",
		Template:    "page.tmpl",
	},
	Activity: {
		ID:          Activity,
		Title:       "Activity & Movement",
		Description: "Daily movement supports heart health, mood, and recovery. This log helps you notice patterns over time, not chase numbers.",
		Affirmation: "Any movement counts. Your body remembers effort, not perfection.",
		Template:    "page.tmpl",
	},
	Sleep: {
		ID:          Sleep,
		Title:       "Sleep Records",
		Description: "Sleep affects everything from energy to medication effectiveness. This record focuses on consistency rather than ideal numbers.",
		Affirmation: "Rest is not a reward. It's a necessity.",
		Template:    "page.tmpl",
	},
	Hydration: {
		ID:          Hydration,
		Title:       "Hydration Records",
		Description: "Staying hydrated supports circulation, digestion, and medication absorption. This log helps you build awareness, not pressure.",
		Affirmation: "Caring for your body can be as simple as a glass of water.",
		Template:    "page.tmpl",
	},
	Weight: {
		ID:          Weight,
		Title:       "Weight & BMI Records",
		Description: "Weight and BMI are medical reference points, not measures of worth. This record focuses on change over time, not judgment.",
		Affirmation: "Your body is allowed to change. Health is not static.",
		Template:    "page.tmpl",
	},
	Vitals: {
		ID:          Vitals,
		Title:       "Vitals Records",
		Description: "Vital signs offer important clues about how your body is responding to treatment, stress, and daily life. This section helps you track patterns over time.",
		Affirmation: "Noticing your body is an act of care, not worry.",
		Template:    "page.tmpl",
	},
	Cycle: {
		ID:          Cycle,
		Title:       "Women's Health & Menstrual Records",
		Description: "Menstrual cycles reflect hormonal, physical, and emotional health. This section records patterns to support understanding, not prediction pressure.",
		Affirmation: "Your cycle is information, not an inconvenience.",
		Template:    "page.tmpl",
	},
	Symptoms: {
		ID:          Symptoms,
		Title:       "Symptoms Log",
		Description: "Symptoms provide context that numbers alone cannot. Logging them helps identify patterns and connections over time.",
		Affirmation: "Listening to your body is a form of intelligence.",
		Template:    "page.tmpl",
	},
	Timeline: {
		ID:          Timeline,
		Title:       "Health Timeline",
		Description: "Health unfolds over time. This timeline shows how different parts of your health connect: medications, symptoms, vitals, and daily patterns.",
		Affirmation: "Progress is easier to see when you look at the whole story.",
		Template:    "page.tmpl",
	},
	Assistant: {
		ID:          Assistant,
		Title:       "AI Health Assistant",
		Description: "Your assistant helps explain your health records and patterns. It provides insights based on your data, but does not replace professional medical advice.",
		Affirmation: "Asking questions is part of taking care of yourself.",
		Template:    "assistant.tmpl",
	},
	NotFound: {
		ID:          NotFound,
		Title:       "Page not found",
		Description: "Oops! The page you're looking for doesn't exist.",
		Template:    "notfound.tmpl",
	},
}

// Lookup returns the page for id; unknown ids map to the not-found page.
func Lookup(id ID) Page {
	if p, ok := catalog[id]; ok {
		return p
	}
	return catalog[NotFound]
}

func Known(id ID) bool {
	_, ok := catalog[id]
	return ok
}

// Greeting is the dashboard salutation for the given local time.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 6:
		return "Good night"
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
