package models

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
	JobStatusInactive JobStatus = "inactive"
)

// JobStatusAll - значение фильтра "все статусы"
const JobStatusAll = "all"

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusActive, JobStatusArchived, JobStatusInactive:
		return true
	}
	return false
}
