package service

import "github.com/poise-dev/poise/internal/models"

// ProjectCreateRequest carries the full field set for a new project.
// The services perform no validation; required fields (name, building
// type, customer) are the caller's responsibility. A project created
// with Finalised already true is persisted as-is: creation does not
// pass through the finalisation guard.
type ProjectCreateRequest struct {
	Name             string      `json:"name"`
	BuildingType     string      `json:"buildingType"`
	Address          string      `json:"address"`
	ERFNumber        int64       `json:"erfNumber"`
	TotalFee         float64     `json:"totalFee"`
	AmountPaidToDate float64     `json:"amountPaidToDate"`
	Deadline         models.Date `json:"deadline"`
	ArchitectID      int64       `json:"architectId"`
	ContractorID     int64       `json:"contractorId"`
	CustomerID       int64       `json:"customerId"`
	EngineerID       int64       `json:"engineerId"`
	ManagerID        int64       `json:"managerId"`
	Finalised        bool        `json:"finalised"`
	CompletionDate   models.Date `json:"completionDate"`
}

// ProjectUpdateRequest is a partial update: only fields that were
// supplied overwrite the stored project, everything else keeps its
// current value.
type ProjectUpdateRequest struct {
	Name             models.Optional[string]      `json:"name"`
	BuildingType     models.Optional[string]      `json:"buildingType"`
	Address          models.Optional[string]      `json:"address"`
	ERFNumber        models.Optional[int64]       `json:"erfNumber"`
	TotalFee         models.Optional[float64]     `json:"totalFee"`
	AmountPaidToDate models.Optional[float64]     `json:"amountPaidToDate"`
	Deadline         models.Optional[models.Date] `json:"deadline"`
	ArchitectID      models.Optional[int64]       `json:"architectId"`
	ContractorID     models.Optional[int64]       `json:"contractorId"`
	CustomerID       models.Optional[int64]       `json:"customerId"`
	EngineerID       models.Optional[int64]       `json:"engineerId"`
	ManagerID        models.Optional[int64]       `json:"managerId"`
	Finalised        models.Optional[bool]        `json:"finalised"`
	CompletionDate   models.Optional[models.Date] `json:"completionDate"`
}

// PersonCreateRequest carries the full field set for a new person.
type PersonCreateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// PersonUpdateRequest is a partial update over the five mutable person
// fields.
type PersonUpdateRequest struct {
	Name    models.Optional[string] `json:"name"`
	Phone   models.Optional[string] `json:"phone"`
	Email   models.Optional[string] `json:"email"`
	Address models.Optional[string] `json:"address"`
	Role    models.Optional[string] `json:"role"`
}
