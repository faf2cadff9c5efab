package flow

import (
	"slices"

	"google.golang.org/genai"
)

// MCQQuestionCount is what the prompt asks for; replies are not rejected
// for returning a different number.
const MCQQuestionCount = 30

type MCQInput struct {
	JobTitle string `json:"job_title"`
}

func (in MCQInput) Validate() error {
	return required("job_title", in.JobTitle)
}

// Count is read by the prompt template.
func (in MCQInput) Count() int {
	return MCQQuestionCount
}

type MCQQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// HasValidAnswer reports whether CorrectAnswer is one of Options.
func (q MCQQuestion) HasValidAnswer() bool {
	return slices.Contains(q.Options, q.CorrectAnswer)
}

type MCQOutput struct {
	Questions []MCQQuestion `json:"questions"`
}

var MCQGeneration = &Definition[MCQInput, MCQOutput]{
	Name:   "mcq_generation",
	Prompt: mustPrompt("mcq_generation.tmpl"),
	Output: object([]string{"questions"}, map[string]*genai.Schema{
		"questions": {
			Type:        genai.TypeArray,
			Description: "The generated questions.",
			MinItems:    genai.Ptr[int64](1),
			Items: object([]string{"question", "options", "correct_answer"}, map[string]*genai.Schema{
				"question": text("The question."),
				"options": {
					Type:        genai.TypeArray,
					Description: "The answer options.",
					MinItems:    genai.Ptr[int64](2),
					Items:       text("One answer option."),
				},
				"correct_answer": text("The correct option, copied verbatim."),
			}),
		},
	}),
}
