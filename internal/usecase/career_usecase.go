package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fadilmartias/careerboost/internal/dto"
	"github.com/fadilmartias/careerboost/internal/flow"
	"github.com/fadilmartias/careerboost/internal/logging"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/fadilmartias/careerboost/internal/repository"
)

// CareerUsecase runs the model-backed career features for a signed-in
// user, filling in the profile resume when a request leaves it out.
type CareerUsecase struct {
	userRepo *repository.UserRepository
	runner   *flow.Runner
	log      logging.Logger
}

func NewCareerUsecase(userRepo *repository.UserRepository, runner *flow.Runner, log logging.Logger) *CareerUsecase {
	return &CareerUsecase{userRepo: userRepo, runner: runner, log: log}
}

func (uc *CareerUsecase) ATSScore(ctx context.Context, userID string, req dto.ATSRequest) (*flow.ATSOutput, error) {
	in := flow.ATSInput{ResumeDataURI: req.ResumeDataURI, JobDescription: req.JobDescription}
	if strings.TrimSpace(in.ResumeDataURI) == "" {
		text, err := uc.resumeOrProfile(ctx, userID, req.ResumeText)
		if err != nil {
			return nil, err
		}
		if text != "" {
			in.ResumeDataURI = flow.EncodeDataURI("text/plain", []byte(text))
		}
	}
	return uc.runner.ATSScoring(ctx, in)
}

func (uc *CareerUsecase) EnhanceResume(ctx context.Context, userID string, in flow.EnhanceInput) (*flow.EnhanceOutput, error) {
	var err error
	if in.ResumeText, err = uc.resumeOrProfile(ctx, userID, in.ResumeText); err != nil {
		return nil, err
	}
	return uc.runner.EnhanceResume(ctx, in)
}

// GenerateMCQTest rejects the whole test if any question names a correct
// answer that is not one of its options.
func (uc *CareerUsecase) GenerateMCQTest(ctx context.Context, in flow.MCQInput) (*flow.MCQOutput, error) {
	out, err := uc.runner.GenerateMCQTest(ctx, in)
	if err != nil {
		return nil, err
	}
	for i, q := range out.Questions {
		if !q.HasValidAnswer() {
			uc.log.Warn(ctx, "generated question has no valid answer", "question", i+1)
			return nil, fmt.Errorf("%s: question %d: %w: correct answer is not one of the options",
				flow.MCQGeneration.Name, i+1, model.ErrModelOutputInvalid)
		}
	}
	return out, nil
}

// GradeMCQ scores the submitted answers and raises the skills the job
// title exercises. Unanswered questions count as wrong.
func (uc *CareerUsecase) GradeMCQ(ctx context.Context, userID string, req dto.MCQSubmitRequest) (*dto.MCQResultResponse, error) {
	if len(req.Questions) == 0 {
		return nil, fmt.Errorf("%w: questions are required", model.ErrInvalidInput)
	}
	if len(req.Answers) > len(req.Questions) {
		return nil, fmt.Errorf("%w: more answers than questions", model.ErrInvalidInput)
	}

	correct := 0
	for i, answer := range req.Answers {
		if answer != "" && answer == req.Questions[i].CorrectAnswer {
			correct++
		}
	}
	percentage := Percentage(correct, len(req.Questions))
	awarded := SkillsForJob(req.JobTitle, percentage)

	scores, err := applyScores(ctx, uc.userRepo, userID, awarded)
	if err != nil {
		return nil, err
	}
	uc.log.Info(ctx, "mcq test graded", "user_id", userID, "job_title", req.JobTitle, "percentage", percentage)

	return &dto.MCQResultResponse{
		Correct:    correct,
		Total:      len(req.Questions),
		Percentage: percentage,
		Awarded:    awarded,
		Scores:     scores,
	}, nil
}

func (uc *CareerUsecase) MockInterview(ctx context.Context, userID string, in flow.InterviewInput) (*flow.InterviewOutput, error) {
	var err error
	if in.Resume, err = uc.resumeOrProfile(ctx, userID, in.Resume); err != nil {
		return nil, err
	}
	return uc.runner.MockInterview(ctx, in)
}

func (uc *CareerUsecase) Tutor(ctx context.Context, userID string, in flow.TutoringInput) (*flow.TutoringOutput, error) {
	var err error
	if in.UserResume, err = uc.resumeOrProfile(ctx, userID, in.UserResume); err != nil {
		return nil, err
	}
	return uc.runner.Tutor(ctx, in)
}

func (uc *CareerUsecase) resumeOrProfile(ctx context.Context, userID, given string) (string, error) {
	if strings.TrimSpace(given) != "" {
		return given, nil
	}
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.ResumeText, nil
}

// Percentage rounds half up, so 21 of 30 is 70.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

type jobSkills struct {
	primary   string
	secondary string
}

var skillsByJob = map[string]jobSkills{
	"software engineer": {model.SkillTechnical, model.SkillProblemSolving},
	"product manager":   {model.SkillProjectMgmt, model.SkillCommunication},
	"ux designer":       {model.SkillProblemSolving, model.SkillTeamwork},
}

// SkillsForJob maps a test result onto skills. Known titles award the full
// percentage to their primary skill and a damped one (15 points less above
// 70) to a secondary skill; any other title awards Technical.
func SkillsForJob(jobTitle string, percentage int) model.ScoreMap {
	skills, ok := skillsByJob[strings.ToLower(strings.TrimSpace(jobTitle))]
	if !ok {
		return model.ScoreMap{model.SkillTechnical: percentage}
	}
	secondary := percentage
	if percentage > 70 {
		secondary = percentage - 15
	}
	return model.ScoreMap{skills.primary: percentage, skills.secondary: secondary}
}
