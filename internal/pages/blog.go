package pages

import (
	"sort"
	"time"

	"MedSyncAI/internal/models"
)

// AllCategories selects every blog category.
const AllCategories = "all"

// TargetEveryone marks a post shown regardless of the reader's gender.
const TargetEveryone = "all"

var BlogCategories = []string{
	AllCategories,
	"Heart Health",
	"Wellness",
	"Preventive Care",
	"Chronic Conditions",
	"Women's Health",
	"Men's Health",
	"Medication Management",
}

type Post struct {
	Slug         string
	Title        string
	Excerpt      string
	Category     string
	TargetGender string
	Author       string
	PublishedAt  time.Time
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

var posts = []Post{
	{
		Slug:         "understanding-blood-pressure",
		Title:        "Understanding Your Blood Pressure Numbers",
		Excerpt:      "What systolic and diastolic readings mean, and when a reading is worth a call to your doctor.",
		Category:     "Heart Health",
		TargetGender: TargetEveryone,
		Author:       "Dr. Sarah Chen",
		PublishedAt:  day("2025-03-02"),
	},
	{
		Slug:         "sleep-and-recovery",
		Title:        "Why Sleep Is Your Best Recovery Tool",
		Excerpt:      "Small changes to your evening routine that make a measurable difference to rest.",
		Category:     "Wellness",
		TargetGender: TargetEveryone,
		Author:       "Maya Patel, RN",
		PublishedAt:  day("2025-02-20"),
	},
	{
		Slug:         "annual-checkups",
		Title:        "The Screenings Worth Scheduling Every Year",
		Excerpt:      "A short guide to routine checks by age, and how to prepare for them.",
		Category:     "Preventive Care",
		TargetGender: TargetEveryone,
		Author:       "Dr. James Okafor",
		PublishedAt:  day("2025-02-11"),
	},
	{
		Slug:         "living-with-diabetes",
		Title:        "Living Well With Type 2 Diabetes",
		Excerpt:      "Everyday habits that help keep blood sugar steady without taking over your life.",
		Category:     "Chronic Conditions",
		TargetGender: TargetEveryone,
		Author:       "Dr. Sarah Chen",
		PublishedAt:  day("2025-01-28"),
	},
	{
		Slug:         "cycle-tracking-basics",
		Title:        "Cycle Tracking: What Your Patterns Can Tell You",
		Excerpt:      "How logging your cycle helps you and your clinician spot changes early.",
		Category:     "Women's Health",
		TargetGender: string(models.GenderFemale),
		Author:       "Dr. Amara Nwosu",
		PublishedAt:  day("2025-02-27"),
	},
	{
		Slug:         "prostate-health",
		Title:        "Prostate Health: Questions to Ask at Your Next Visit",
		Excerpt:      "What changes with age, which symptoms matter, and when screening makes sense.",
		Category:     "Men's Health",
		TargetGender: string(models.GenderMale),
		Author:       "Dr. James Okafor",
		PublishedAt:  day("2025-02-15"),
	},
	{
		Slug:         "medication-routines",
		Title:        "Building a Medication Routine That Sticks",
		Excerpt:      "Practical ways to remember doses and what to do when you miss one.",
		Category:     "Medication Management",
		TargetGender: TargetEveryone,
		Author:       "Maya Patel, RN",
		PublishedAt:  day("2025-01-15"),
	},
}

// BlogPosts returns the posts for a reader, newest first. Posts aimed at a
// gender are only shown when the profile has that gender. An empty or "all"
// category keeps every category.
func BlogPosts(profile *models.Profile, category string) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.TargetGender != TargetEveryone && (profile == nil || string(profile.Gender) != p.TargetGender) {
			continue
		}
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

// BlogCategory normalises a requested category; unknown values select all.
func BlogCategory(category string) string {
	for _, c := range BlogCategories {
		if c == category {
			return c
		}
	}
	return AllCategories
}

func personalized(profile *models.Profile) bool {
	return profile != nil && profile.Gender != "" && profile.Gender != models.GenderPreferNotToSay
}

// BlogDescription is the blog intro text for a reader.
func BlogDescription(profile *models.Profile) string {
	if personalized(profile) {
		return "Articles curated based on your profile and health interests."
	}
	return "Explore evidence-based health articles to support your wellness journey."
}

// BlogPersonalization explains how the post list was filtered.
func BlogPersonalization(profile *models.Profile) string {
	if personalized(profile) {
		return "Articles are filtered based on your profile (" + string(profile.Gender) +
			"). You'll see general health content plus articles specifically relevant to you. You can adjust your profile settings anytime."
	}
	return "Some articles are tailored to specific health needs. Update your profile to see more personalized content recommendations."
}
