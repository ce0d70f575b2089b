package jobapimodels

import (
	"time"

	"github.com/pkg/errors"
	"talentflow-backend/lib/utils/helpers"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	dbmodels "talentflow-backend/models/db"
)

// JobData - полное тело вакансии для создания и полной замены
type JobData struct {
	Title          string           `json:"title"`
	Status         models.JobStatus `json:"status"`
	Tags           []string         `json:"tags"`
	SortOrder      int              `json:"order"`
	Department     string           `json:"department"`
	Location       string           `json:"location"`
	Experience     string           `json:"experience"`
	EmploymentType string           `json:"employmentType"`
	Priority       int              `json:"priority"`
	DatePosted     *time.Time       `json:"datePosted"`
	Description    string           `json:"description"`
	Requirements   []string         `json:"requirements"`
}

func (d JobData) Validate() error {
	if d.Title == "" {
		return errors.New("не указано название вакансии")
	}
	if d.Status != "" && !d.Status.IsValid() {
		return errors.Errorf("неизвестный статус вакансии %q", d.Status)
	}
	return nil
}

func (d JobData) ToRec() dbmodels.Job {
	status := d.Status
	if status == "" {
		status = models.JobStatusActive
	}
	return dbmodels.Job{
		Title:          d.Title,
		Status:         status,
		Tags:           d.Tags,
		SortOrder:      d.SortOrder,
		Department:     d.Department,
		Location:       d.Location,
		Experience:     d.Experience,
		EmploymentType: d.EmploymentType,
		Priority:       d.Priority,
		DatePosted:     d.DatePosted,
		Description:    d.Description,
		Requirements:   d.Requirements,
	}
}

// JobPatch - частичное обновление, применяются только переданные поля
type JobPatch struct {
	Title          *string           `json:"title"`
	Status         *models.JobStatus `json:"status"`
	Tags           *[]string         `json:"tags"`
	SortOrder      *int              `json:"order"`
	Department     *string           `json:"department"`
	Location       *string           `json:"location"`
	Experience     *string           `json:"experience"`
	EmploymentType *string           `json:"employmentType"`
	Priority       *int              `json:"priority"`
	DatePosted     *time.Time        `json:"datePosted"`
	Description    *string           `json:"description"`
	Requirements   *[]string         `json:"requirements"`
}

func (p JobPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return errors.New("название вакансии не может быть пустым")
	}
	if p.Status != nil && !p.Status.IsValid() {
		return errors.Errorf("неизвестный статус вакансии %q", *p.Status)
	}
	return nil
}

// ToUpdMap собирает карту изменений по заполненным полям
func (p JobPatch) ToUpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	setField := func(name string, value interface{}) {
		updMap[helpers.ToSnakeCase(name)] = value
	}
	if p.Title != nil {
		setField("Title", *p.Title)
	}
	if p.Status != nil {
		setField("Status", *p.Status)
	}
	if p.Tags != nil {
		setField("Tags", dbmodels.StringArray(*p.Tags))
	}
	if p.SortOrder != nil {
		setField("SortOrder", *p.SortOrder)
	}
	if p.Department != nil {
		setField("Department", *p.Department)
	}
	if p.Location != nil {
		setField("Location", *p.Location)
	}
	if p.Experience != nil {
		setField("Experience", *p.Experience)
	}
	if p.EmploymentType != nil {
		setField("EmploymentType", *p.EmploymentType)
	}
	if p.Priority != nil {
		setField("Priority", *p.Priority)
	}
	if p.DatePosted != nil {
		setField("DatePosted", *p.DatePosted)
	}
	if p.Description != nil {
		setField("Description", *p.Description)
	}
	if p.Requirements != nil {
		setField("Requirements", dbmodels.StringArray(*p.Requirements))
	}
	return updMap
}

// JobFilter - параметры строки запроса списка вакансий
type JobFilter struct {
	Search string   `query:"search"` // подстрока названия без учёта регистра
	Status string   `query:"status"` // точное совпадение или all
	Tags   []string `query:"tags"`   // AND-семантика
	apimodels.Pagination
}

func (f JobFilter) Validate() error {
	if f.Status != "" && f.Status != models.JobStatusAll && !models.JobStatus(f.Status).IsValid() {
		return errors.Errorf("неизвестный статус вакансии %q", f.Status)
	}
	return nil
}

type ReorderRequest struct {
	ReorderedJobs []dbmodels.Job `json:"reorderedJobs"`
}

func (r ReorderRequest) Validate() error {
	if len(r.ReorderedJobs) == 0 {
		return errors.New("не передан список вакансий для пересортировки")
	}
	seen := map[uint]bool{}
	for _, job := range r.ReorderedJobs {
		if job.ID == 0 {
			return errors.New("в списке пересортировки есть вакансия без идентификатора")
		}
		if seen[job.ID] {
			return errors.Errorf("вакансия %v указана в списке пересортировки дважды", job.ID)
		}
		seen[job.ID] = true
	}
	return nil
}
