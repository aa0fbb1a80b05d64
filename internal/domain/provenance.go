package domain

// ProvenanceEventType is the variant tag of a provenance event.
type ProvenanceEventType string

// Provenance event variants.
const (
	ProvenanceAcquisition       ProvenanceEventType = "Acquisition"
	ProvenanceTransferOfCustody ProvenanceEventType = "TransferOfCustody"
)

// ProvenanceEvent is a change of ownership or custody of an object.
// Adjacent events are linked by identifier, not by reference.
type ProvenanceEvent struct {
	ID              string              `json:"id"`
	Type            ProvenanceEventType `json:"type,omitempty"`
	AdditionalTypes []Term              `json:"additionalTypes,omitempty"`
	Description     *string             `json:"description,omitempty"`
	Date            *TimeSpan           `json:"date,omitempty"`
	TransferredFrom *Agent              `json:"transferredFrom,omitempty"`
	TransferredTo   *Agent              `json:"transferredTo,omitempty"`
	Location        *Place              `json:"location,omitempty"`
	StartsAfter     *string             `json:"startsAfter,omitempty"`
	EndsBefore      *string             `json:"endsBefore,omitempty"`
}
