package seedhandler

import (
	"fmt"
	"strings"
	"time"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

const (
	jobCount             = 25
	candidateCount       = 1000
	guaranteedPerJob     = 3
	notesProbability     = 0.3
	requiredProbability  = 0.7
	activeProbability    = 0.7
	maxPostedAgeDays     = 90
	maxApplyAgeDays      = 30
	maxStageStepDays     = 7
	minQuestionsPerKind  = 10
	skillsQuestionsBase  = 12
	skillsQuestionsExtra = 6
)

func (i *impl) genJobs() []dbmodels.Job {
	jobs := make([]dbmodels.Job, 0, jobCount)
	now := time.Now()
	for idx := 0; idx < jobCount; idx++ {
		status := models.JobStatusActive
		if i.rnd.Float64() >= activeProbability {
			status = models.JobStatusArchived
		}
		tags := append(
			i.pickStrings(techTags, 1+i.rnd.Intn(4)),
			i.pickStrings(skillTags, 1+i.rnd.Intn(2))...,
		)
		title := jobTitles[idx]
		department := departments[i.rnd.Intn(len(departments))]
		experience := experiences[i.rnd.Intn(len(experiences))]
		posted := now.AddDate(0, 0, -i.rnd.Intn(maxPostedAgeDays))
		jobs = append(jobs, dbmodels.Job{
			Title:          title,
			Status:         status,
			Tags:           tags,
			SortOrder:      idx,
			Department:     department,
			Location:       locations[i.rnd.Intn(len(locations))],
			Experience:     experience,
			EmploymentType: employmentTypes[i.rnd.Intn(len(employmentTypes))],
			Priority:       1 + i.rnd.Intn(5),
			DatePosted:     &posted,
			Description:    fmt.Sprintf("We are looking for a talented %s to join our %s team and help us build great products.", title, department),
			Requirements: dbmodels.StringArray{
				fmt.Sprintf("%s level experience in a similar role", experience),
				fmt.Sprintf("Strong knowledge of %s", strings.Join(tags[:2], " and ")),
				"Excellent communication and collaboration skills",
				"Bachelor's degree or equivalent practical experience",
				"Ability to work in a fast-paced environment",
			},
		})
	}
	return jobs
}

// genCandidates раздаёт 1000 кандидатов по вакансиям: первым трём на
// каждую вакансию место гарантировано, остальные - равномерно случайно
func (i *impl) genCandidates(jobs []dbmodels.Job) []dbmodels.Candidate {
	jobIDs := make([]uint, 0, candidateCount)
	for _, job := range jobs {
		for k := 0; k < guaranteedPerJob; k++ {
			jobIDs = append(jobIDs, job.ID)
		}
	}
	for len(jobIDs) < candidateCount {
		jobIDs = append(jobIDs, jobs[i.rnd.Intn(len(jobs))].ID)
	}
	i.rnd.Shuffle(len(jobIDs), func(a, b int) {
		jobIDs[a], jobIDs[b] = jobIDs[b], jobIDs[a]
	})

	now := time.Now()
	candidates := make([]dbmodels.Candidate, 0, candidateCount)
	for idx, jobID := range jobIDs {
		first := firstNames[i.rnd.Intn(len(firstNames))]
		last := lastNames[i.rnd.Intn(len(lastNames))]
		stageIdx := i.rnd.Intn(len(models.StageList))
		applied := now.AddDate(0, 0, -i.rnd.Intn(maxApplyAgeDays))

		history := dbmodels.StageHistory{}
		at := applied
		for hi := 0; hi <= stageIdx; hi++ {
			history = append(history, dbmodels.StageHistoryEntry{
				Stage:     models.StageList[hi],
				Timestamp: at,
			})
			at = at.Add(time.Duration(i.rnd.Int63n(int64(maxStageStepDays * 24 * time.Hour))))
		}

		var notes dbmodels.NoteList
		if i.rnd.Float64() < notesProbability {
			for n := 0; n < 1+i.rnd.Intn(3); n++ {
				notes = append(notes, dbmodels.Note{
					NoteID:    int64(n + 1),
					Text:      noteTexts[i.rnd.Intn(len(noteTexts))],
					Timestamp: applied.Add(time.Duration(i.rnd.Int63n(int64(at.Sub(applied)) + 1))),
				})
			}
		}

		candidates = append(candidates, dbmodels.Candidate{
			JobID:        jobID,
			Name:         first + " " + last,
			Email:        fmt.Sprintf("%s.%s%d@example.com", emailPart(first), emailPart(last), idx+1),
			SortOrder:    idx,
			CurrentStage: models.StageList[stageIdx],
			StageHistory: history,
			Notes:        notes,
		})
	}
	return candidates
}

func emailPart(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "'", ""))
}

func (i *impl) genAssessments(jobs []dbmodels.Job) []dbmodels.Assessment {
	assessments := make([]dbmodels.Assessment, 0, len(jobs)*4)
	for _, job := range jobs {
		count := 3 + i.rnd.Intn(2)
		for k := 0; k < count; k++ {
			kind := models.AssessmentKindList[k]
			slug := kindSlug[kind]
			questions := make([]dbmodels.Question, 0)
			for qi, tpl := range i.pickTemplates(kind) {
				questions = append(questions, dbmodels.Question{
					ID:         fmt.Sprintf("question-%d-%s-%d", job.ID, slug, qi+1),
					Text:       tpl.text,
					IsRequired: i.rnd.Float64() < requiredProbability,
					Details:    tpl.details,
				})
			}
			assessments = append(assessments, dbmodels.Assessment{
				JobID: job.ID,
				Title: fmt.Sprintf("%s - %s", job.Title, kind),
				Sections: dbmodels.SectionList{{
					ID:          fmt.Sprintf("section-%d-%s", job.ID, slug),
					Title:       string(kind),
					Description: fmt.Sprintf("Please complete all questions for the %s.", strings.ToLower(string(kind))),
					Questions:   questions,
				}},
			})
		}
	}
	return assessments
}

// pickTemplates собирает пул вопросов опросника: сначала профильный пул
// целиком в случайном порядке, затем добор из соседнего до минимума
func (i *impl) pickTemplates(kind models.AssessmentKind) []questionTemplate {
	var primary, filler []questionTemplate
	target := minQuestionsPerKind
	switch kind {
	case models.AssessmentTechnical:
		primary, filler = technicalQuestions, behavioralQuestions
	case models.AssessmentBehavioral:
		primary, filler = behavioralQuestions, technicalQuestions
	case models.AssessmentCulture:
		primary, filler = cultureQuestions, behavioralQuestions
	case models.AssessmentSkills:
		primary = concatTemplates(technicalQuestions, behavioralQuestions, cultureQuestions)
		target = skillsQuestionsBase + i.rnd.Intn(skillsQuestionsExtra)
	}
	picked := i.shuffledTemplates(primary)
	if len(picked) > target {
		picked = picked[:target]
	}
	for _, tpl := range i.shuffledTemplates(filler) {
		if len(picked) >= target {
			break
		}
		picked = append(picked, tpl)
	}
	return picked
}

func (i *impl) shuffledTemplates(pool []questionTemplate) []questionTemplate {
	out := append([]questionTemplate{}, pool...)
	i.rnd.Shuffle(len(out), func(a, b int) {
		out[a], out[b] = out[b], out[a]
	})
	return out
}

func concatTemplates(pools ...[]questionTemplate) []questionTemplate {
	out := []questionTemplate{}
	for _, pool := range pools {
		out = append(out, pool...)
	}
	return out
}

func (i *impl) pickStrings(pool []string, n int) dbmodels.StringArray {
	out := i.shuffledStrings(pool)
	if len(out) > n {
		out = out[:n]
	}
	return dbmodels.StringArray(out)
}

func (i *impl) shuffledStrings(pool []string) []string {
	out := append([]string{}, pool...)
	i.rnd.Shuffle(len(out), func(a, b int) {
		out[a], out[b] = out[b], out[a]
	})
	return out
}
