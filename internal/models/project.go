package models

import "strconv"

// Project represents a construction project.
type Project struct {
	// ID is the surrogate database identifier, assigned on creation.
	ID int64 `json:"id"`

	// Name is the project's display name (e.g. "House Tladi").
	Name string `json:"name"`

	// BuildingType describes what is being built (e.g. "House", "Apartment").
	BuildingType string `json:"buildingType"`

	// Address is the physical address of the site.
	Address string `json:"address"`

	// ERFNumber is the municipal plot identifier for the site.
	ERFNumber int64 `json:"erfNumber"`

	// TotalFee is the total fee charged for the project.
	TotalFee float64 `json:"totalFee"`

	// AmountPaidToDate is how much of the fee has been paid so far.
	AmountPaidToDate float64 `json:"amountPaidToDate"`

	// Deadline is the date the project is due. Zero if not set.
	Deadline Date `json:"deadline"`

	// Weak references to people by ID. CustomerID is required; the
	// other four are 0 when the role is unassigned.
	ArchitectID  int64 `json:"architectId"`
	ContractorID int64 `json:"contractorId"`
	CustomerID   int64 `json:"customerId"`
	EngineerID   int64 `json:"engineerId"`
	ManagerID    int64 `json:"managerId"`

	// Finalised marks the project complete. Once true it stays true;
	// there is no un-finalise.
	Finalised bool `json:"finalised"`

	// CompletionDate is set when the project is finalised, zero before.
	CompletionDate Date `json:"completionDate"`
}

// ProjectSummary is the reduced projection used by list views, where
// full details aren't needed.
type ProjectSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Finalised bool   `json:"finalised"`
}

// FormatFee renders a monetary amount to two decimal places for display.
func FormatFee(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
