package model

import (
	"fmt"
	"maps"
)

const (
	SkillCommunication  = "Communication"
	SkillTechnical      = "Technical"
	SkillProblemSolving = "Problem Solving"
	SkillLeadership     = "Leadership"
	SkillProjectMgmt    = "Project Mgmt"
	SkillTeamwork       = "Teamwork"

	MinScore = 0
	MaxScore = 100
)

// Skills is the fixed set of tracked skills, in display order.
var Skills = []string{
	SkillCommunication,
	SkillTechnical,
	SkillProblemSolving,
	SkillLeadership,
	SkillProjectMgmt,
	SkillTeamwork,
}

// ScoreMap maps a skill name to a proficiency between 0 and 100.
type ScoreMap map[string]int

// DefaultScores returns a map with every tracked skill at zero.
func DefaultScores() ScoreMap {
	scores := make(ScoreMap, len(Skills))
	for _, skill := range Skills {
		scores[skill] = 0
	}
	return scores
}

func IsSkill(name string) bool {
	for _, skill := range Skills {
		if skill == name {
			return true
		}
	}
	return false
}

// Validate rejects unknown skills and values outside 0..100.
func (s ScoreMap) Validate() error {
	for skill, value := range s {
		if !IsSkill(skill) {
			return fmt.Errorf("%w: unknown skill %q", ErrInvalidInput, skill)
		}
		if value < MinScore || value > MaxScore {
			return fmt.Errorf("%w: score for %q must be between %d and %d", ErrInvalidInput, skill, MinScore, MaxScore)
		}
	}
	return nil
}

// Merge returns a new map holding, for every skill in incoming, the larger of
// the current and incoming value. Skills absent from incoming are kept as is,
// so stored scores never decrease.
func (s ScoreMap) Merge(incoming ScoreMap) ScoreMap {
	merged := make(ScoreMap, len(s)+len(incoming))
	maps.Copy(merged, s)
	for skill, value := range incoming {
		merged[skill] = max(s[skill], value)
	}
	return merged
}
