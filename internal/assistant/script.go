package assistant

import "strings"

type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

type Message struct {
	Role    Role   `json:"role"`
	Message string `json:"message"`
}

const Greeting = "Hello! I'm here to help you understand your health records. I can explain trends, answer questions about your medications, and help you prepare for appointments. What would you like to know?"

const fallbackReply = "I can help with your vitals, medications, lab results, sleep and symptoms. Try one of the suggested questions to get started."

// Suggestions are offered on the assistant page.
var Suggestions = []string{
	"What do my vitals trends show this week?",
	"How has my medication adherence been?",
	"Explain my latest lab results",
	"Are there patterns in my symptoms?",
}

type topic struct {
	keywords []string
	reply    string
}

// 스크립트 응답, 위에서부터 첫 매칭
var topics = []topic{
	{
		keywords: []string{"blood pressure", "vitals", "heart rate"},
		reply:    "Based on your recent readings, your blood pressure has been stable and within a healthy range. Over the past 7 days:\n\n• Average: 120/79 mmHg\n• Highest: 122/82 mmHg (Jan 6)\n• Lowest: 118/78 mmHg (Jan 7)\n\nThese readings suggest your current treatment is working well.",
	},
	{
		keywords: []string{"medication", "adherence", "dose", "pill"},
		reply:    "You've taken 3 of 4 scheduled doses today and your adherence this week is 92%. Taking Lisinopril at the same time each morning seems to be helping your consistency.",
	},
	{
		keywords: []string{"lab", "result", "cholesterol"},
		reply:    "Your latest lab panel shows values within the reference ranges. Your provider can walk you through what each value means for you at your next appointment.",
	},
	{
		keywords: []string{"symptom", "headache", "pattern"},
		reply:    "Your symptom log shows mild headaches on days with fewer than 6 glasses of water. Keeping an eye on hydration may be worth discussing with your provider.",
	},
	{
		keywords: []string{"sleep", "tired", "rest"},
		reply:    "You averaged 7.5 hours of sleep last week, with the most consistent bedtimes on weekdays. Consistency matters more than any single night.",
	},
}

// Reply picks the scripted answer for a question.
func Reply(question string) Message {
	q := strings.ToLower(question)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(q, kw) {
				return Message{Role: RoleAssistant, Message: t.reply}
			}
		}
	}
	return Message{Role: RoleAssistant, Message: fallbackReply}
}
