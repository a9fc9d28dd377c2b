package quiz

import "github.com/thaumiel-labs/seraph-relay/internal/models"

// fallbackQuestionTexts and teamAnswers form the predefined question bank
// used when Gemini is unavailable. Answer i for a team pairs with question
// i, so the bank works with any 2-4 team selection.
var fallbackQuestionTexts = []string{
	"What would you do if you found a secret door in your school?",
	"How do you approach solving a difficult puzzle?",
	"What's your strategy when playing a team game?",
	"What would you do with a day off from school?",
	"How do you react when something doesn't go as planned?",
}

var teamAnswers = map[string][]string{
	"EMBER": {
		"Burst through immediately to see what's on the other side!",
		"Try every approach rapidly until something works!",
		"Lead the charge and inspire everyone with energy!",
		"Go on an adventure, trying as many exciting activities as possible!",
		"Jump into fixing it immediately with determination!",
	},
	"TERRA": {
		"Carefully examine it first and make a plan before proceeding.",
		"Break it down into smaller parts and solve methodically.",
		"Create a solid foundation for my team to build upon.",
		"Spend time in nature or working on a meaningful project.",
		"Stay calm and develop a practical solution step by step.",
	},
	"VEIL": {
		"Watch from a distance first to see if others notice it.",
		"Look for hidden patterns and unexpected connections.",
		"Analyze the other team's strategy and find their weaknesses.",
		"Research something fascinating that others don't know about.",
		"Quietly observe and plan a different approach nobody expects.",
	},
	"AERIAL": {
		"Think of creative ways to use the door for something fun!",
		"Try unusual approaches nobody else would think of.",
		"Come up with unexpected strategies that surprise everyone.",
		"Create something original or explore somewhere new.",
		"See it as an opportunity to try something completely different!",
	},
	"HALO": {
		"Tell friends so we can explore it together safely.",
		"Ask others for input to find the best solution together.",
		"Make sure everyone on the team feels included and valued.",
		"Spend time connecting with friends and helping others.",
		"Find a solution that makes everyone feel better about the situation.",
	},
	"FLUX": {
		"Gather information quickly and adapt my approach as needed.",
		"Try different approaches and adjust based on what works.",
		"Switch roles whenever needed to help the team succeed.",
		"Keep my options open and change plans based on what seems most interesting.",
		"Quickly adjust my expectations and find a new opportunity.",
	},
	"NOVA": {
		"Create a dramatic reveal and invite everyone to see what I found!",
		"Challenge the conventional methods and create a breakthrough solution.",
		"Completely change how the game is played with bold moves.",
		"Do something that completely transforms my usual routine.",
		"Use this as a chance to completely transform the situation!",
	},
	"TEMPO": {
		"Create a detailed plan for exploring it safely and efficiently.",
		"Work through it step-by-step with careful attention to detail.",
		"Create a precise strategy and ensure everyone follows it.",
		"Schedule my time carefully to accomplish specific goals.",
		"Analyze what went wrong and create a detailed plan to prevent it happening again.",
	},
}

// fallbackQuestions builds the predefined quiz for the given teams.
func fallbackQuestions(teams []string) *models.QuizData {
	questions := make([]models.QuizQuestion, 0, len(fallbackQuestionTexts))
	for i, text := range fallbackQuestionTexts {
		q := models.QuizQuestion{QuestionText: text}
		for _, team := range teams {
			answers, ok := teamAnswers[team]
			if !ok {
				continue
			}
			q.AnswerChoices = append(q.AnswerChoices, models.AnswerChoice{
				ChoiceText:            answers[i],
				CorrespondingCategory: team,
			})
		}
		questions = append(questions, q)
	}
	return &models.QuizData{Questions: questions}
}
