package dbmodels

import (
	"time"

	"talentflow-backend/models"
)

type Job struct {
	BaseModel
	Title          string           `gorm:"type:varchar(255)" json:"title"`
	Status         models.JobStatus `gorm:"type:varchar(50);index" json:"status"`
	Tags           StringArray      `gorm:"type:jsonb" json:"tags"`
	SortOrder      int              `json:"order"` // позиция при ручной сортировке списка
	Department     string           `gorm:"type:varchar(255)" json:"department,omitempty"`
	Location       string           `gorm:"type:varchar(255)" json:"location,omitempty"`
	Experience     string           `gorm:"type:varchar(100)" json:"experience,omitempty"`
	EmploymentType string           `gorm:"type:varchar(100)" json:"employmentType,omitempty"`
	Priority       int              `json:"priority,omitempty"`
	DatePosted     *time.Time       `json:"datePosted,omitempty"`
	Description    string           `json:"description,omitempty"`
	Requirements   StringArray      `gorm:"type:jsonb" json:"requirements,omitempty"`
}

// HasAllTags - AND-семантика фильтра по тегам
func (j Job) HasAllTags(tags []string) bool {
	for _, tag := range tags {
		found := false
		for _, jobTag := range j.Tags {
			if jobTag == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
