package models

// DeletionStatus is the terminal state of a can-delete check or a safe delete.
type DeletionStatus string

const (
	DeletionAllowed  DeletionStatus = "allowed"
	DeletionNotFound DeletionStatus = "not_found"
	DeletionBlocked  DeletionStatus = "blocked"
	DeletionDeleted  DeletionStatus = "deleted"
	DeletionFailed   DeletionStatus = "failed"
)

// DeletionResult reports the outcome of a dependency check or a cascading delete.
type DeletionResult struct {
	Status       DeletionStatus `json:"status" example:"blocked"`
	CanDelete    bool           `json:"can_delete"`
	Success      bool           `json:"success"`
	Message      string         `json:"message" example:"Category has child categories and cannot be deleted"`
	Dependencies []string       `json:"dependencies"`
	DeletedItems []string       `json:"deleted_items"`
}

func NewDeletionResult() *DeletionResult {
	return &DeletionResult{
		Dependencies: []string{},
		DeletedItems: []string{},
	}
}

func (r *DeletionResult) Allow(message string) *DeletionResult {
	r.Status = DeletionAllowed
	r.CanDelete = true
	r.Message = message
	return r
}

func (r *DeletionResult) Block(message string) *DeletionResult {
	r.Status = DeletionBlocked
	r.CanDelete = false
	r.Success = false
	r.Message = message
	return r
}

func (r *DeletionResult) NotFound(message string) *DeletionResult {
	r.Status = DeletionNotFound
	r.CanDelete = false
	r.Success = false
	r.Message = message
	return r
}

func (r *DeletionResult) Deleted(message string) *DeletionResult {
	r.Status = DeletionDeleted
	r.CanDelete = true
	r.Success = true
	r.Message = message
	return r
}

// Fail discards any items recorded before the rollback.
func (r *DeletionResult) Fail(message string) *DeletionResult {
	r.Status = DeletionFailed
	r.Success = false
	r.Message = message
	r.DeletedItems = []string{}
	return r
}
