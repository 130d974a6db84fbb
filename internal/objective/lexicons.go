package objective

import "regexp"

// Topic labels in canonical order. The order doubles as the tie-breaker
// when ranking counters.
var TopicLabels = []string{
	"coding", "emotional", "relationship", "work", "family", "health",
	"education", "entertainment", "travel", "financial", "intimacy",
}

// Intent labels in canonical order.
var IntentLabels = []string{
	"seeking_advice", "venting", "asking_information", "sharing_experience",
	"seeking_emotional_support", "making_plans", "problem_solving",
	"seeking_opinion", "romantic_situation",
}

// topicLexicons maps each topic to its substring lexicon. Matching is
// plain substring counting over the lower-cased combined text; no
// tokenization, no stemming.
var topicLexicons = map[string][]string{
	"coding": {
		"code", "coding", "program", "bug", "debug", "function",
		"compile", "deploy", "python", "javascript", "golang",
	},
	"emotional": {
		"feel", "feeling", "sad", "happy", "cry", "lonely", "anxious",
		"stressed", "depressed", "overwhelmed",
	},
	"relationship": {
		"relationship", "dating", "girlfriend", "boyfriend", "partner",
		"marriage", "crush", "breakup",
	},
	"work": {
		"work", "job", "boss", "meeting", "deadline", "office",
		"colleague", "project",
	},
	"family": {
		"family", "mom", "dad", "mother", "father", "sister", "brother",
		"parents",
	},
	"health": {
		"health", "doctor", "sick", "exercise", "gym", "sleep", "diet",
		"headache",
	},
	"education": {
		"study", "school", "university", "exam", "course", "learn",
		"homework", "degree",
	},
	"entertainment": {
		"movie", "music", "game", "gaming", "show", "series", "concert",
		"book",
	},
	"travel": {
		"travel", "trip", "vacation", "flight", "hotel", "beach",
		"abroad",
	},
	"financial": {
		"money", "salary", "budget", "invest", "savings", "rent",
		"debt", "bills",
	},
	"intimacy": {
		"kiss", "cuddle", "hug", "miss you", "love you", "close to you",
		"hold you",
	},
}

// intentPatterns maps each intent to its ordered pattern list. An intent
// fires when any pattern matches the user text; patterns are evaluated
// against the user side only.
var intentPatterns = map[string][]*regexp.Regexp{
	"seeking_advice": {
		regexp.MustCompile(`(?i)what should i`),
		regexp.MustCompile(`(?i)\bany advice\b`),
		regexp.MustCompile(`(?i)how should i`),
		regexp.MustCompile(`(?i)do you think i should`),
	},
	"venting": {
		regexp.MustCompile(`(?i)i(?:'m| am) so (?:frustrated|angry|annoyed|upset)`),
		regexp.MustCompile(`(?i)i just need to vent`),
		regexp.MustCompile(`(?i)i can(?:'t|not) (?:stand|take) (?:it|this)`),
	},
	"asking_information": {
		regexp.MustCompile(`(?i)\bwhat is\b`),
		regexp.MustCompile(`(?i)\bwhat are\b`),
		regexp.MustCompile(`(?i)\bhow does\b`),
		regexp.MustCompile(`(?i)tell me about`),
		regexp.MustCompile(`(?i)do you know`),
	},
	"sharing_experience": {
		regexp.MustCompile(`(?i)\btoday i\b`),
		regexp.MustCompile(`(?i)\bguess what\b`),
		regexp.MustCompile(`(?i)\bi just (?:got|did|saw|finished)\b`),
		regexp.MustCompile(`(?i)you won(?:'t|t) believe`),
	},
	"seeking_emotional_support": {
		regexp.MustCompile(`(?i)i feel (?:so )?(?:sad|lonely|down|depressed|anxious|empty)`),
		regexp.MustCompile(`(?i)\bcomfort me\b`),
		regexp.MustCompile(`(?i)i need (?:you|a hug|someone)`),
	},
	"making_plans": {
		regexp.MustCompile(`(?i)let(?:'s|s) plan`),
		regexp.MustCompile(`(?i)\bwe should\b`),
		regexp.MustCompile(`(?i)\bthis weekend\b`),
		regexp.MustCompile(`(?i)\bcan we go\b`),
		regexp.MustCompile(`(?i)\bi(?:'m| am) planning\b`),
	},
	"problem_solving": {
		regexp.MustCompile(`(?i)how do i fix`),
		regexp.MustCompile(`(?i)\bnot working\b`),
		regexp.MustCompile(`(?i)i(?:'m| am) stuck`),
		regexp.MustCompile(`(?i)can(?:'t|not) figure out`),
		regexp.MustCompile(`(?i)\bthrows? an? error\b`),
	},
	"seeking_opinion": {
		regexp.MustCompile(`(?i)what do you think`),
		regexp.MustCompile(`(?i)\byour opinion\b`),
		regexp.MustCompile(`(?i)\bdo you like\b`),
		regexp.MustCompile(`(?i)\bwould you rather\b`),
	},
	"romantic_situation": {
		regexp.MustCompile(`(?i)\bi love you\b`),
		regexp.MustCompile(`(?i)\bi miss you\b`),
		regexp.MustCompile(`(?i)\bthinking of you\b`),
		regexp.MustCompile(`(?i)\bdate night\b`),
		regexp.MustCompile(`(?i)\bkiss(?:es)? you\b`),
	},
}

// topicGoalTable maps a topic label to the long-term goal it promotes.
var topicGoalTable = map[string]string{
	"coding":        "Support the user's coding projects over time",
	"emotional":     "Build emotional trust and safety",
	"relationship":  "Strengthen the relationship bond",
	"work":          "Support the user's career growth",
	"family":        "Stay attentive to family matters",
	"health":        "Encourage healthy habits",
	"education":     "Encourage continuous learning",
	"entertainment": "Share in the user's hobbies and fun",
	"travel":        "Keep shared travel dreams alive",
	"financial":     "Support sound financial decisions",
	"intimacy":      "Deepen intimacy and closeness",
}

// intentObjectiveTable maps an intent label to the primary objective it
// promotes when ranked among the top intents.
var intentObjectiveTable = map[string]string{
	"seeking_advice":            "Provide helpful advice",
	"venting":                   "Respond empathetically",
	"asking_information":        "Provide accurate information",
	"sharing_experience":        "Show genuine interest in the user's life",
	"seeking_emotional_support": "Respond empathetically",
	"making_plans":              "Help with planning and organization",
	"problem_solving":           "Provide helpful advice",
	"seeking_opinion":           "Share thoughtful opinions",
	"romantic_situation":        "Nurture the romantic connection",
}

// Fixed objective strings shared by the injection rules and the intent
// mapping.
const (
	objectiveEmpathy     = "Respond empathetically"
	objectiveAdvice      = "Provide helpful advice"
	objectiveInformation = "Provide accurate information"
	objectivePlanning    = "Help with planning and organization"
	objectiveRomance     = "Nurture the romantic connection"

	goalSupportEmotion = "Support user's emotional state"
	goalSolveProblem   = "Help solve the user's current problem"
)

// Injection rules evaluated against the combined user+agent text.
var (
	distressPattern = regexp.MustCompile(
		`(?i)(depressed|heartbroken|hopeless|want to cry|can(?:'t|not) cope|falling apart)`)
	codingPattern = regexp.MustCompile(
		`(?i)\b(code|coding|bug|debug|refactor|compile|program)\b`)
	giftPattern = regexp.MustCompile(
		`(?i)\b(gift|present|birthday|anniversary|celebrate|surprise party)\b`)
	careerPattern = regexp.MustCompile(
		`(?i)\b(interview|promotion|resume|job offer|new job|career)\b`)
	datingPattern = regexp.MustCompile(
		`(?i)\b(dating|crush|girlfriend|boyfriend|marriage|propose|breakup)\b`)
)

var (
	taskCoding = TaskGoal{
		Task:            "Keep the user engaged during coding sessions",
		SuccessCriteria: "User stays motivated and makes progress on their code",
		Importance:      "medium",
	}
	taskGift = TaskGoal{
		Task:            "Help plan a thoughtful gift or celebration",
		SuccessCriteria: "A concrete gift or celebration idea is chosen",
		Importance:      "high",
	}
	taskCareer = TaskGoal{
		Task:            "Support the user's career plans",
		SuccessCriteria: "User feels prepared for their next career step",
		Importance:      "high",
	}
	taskRelationship = TaskGoal{
		Task:            "Guide the user through relationship questions",
		SuccessCriteria: "User gains clarity about their relationship situation",
		Importance:      "medium",
	}
)
