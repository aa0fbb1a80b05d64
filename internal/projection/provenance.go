package projection

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

// ProvenanceEvent projects an acquisition or transfer of custody. Adjacent
// events are referenced by id only.
func ProvenanceEvent(r rdf.Resource) domain.ProvenanceEvent {
	return domain.ProvenanceEvent{
		ID:              r.ID(),
		Type:            provenanceType(r),
		AdditionalTypes: Terms(r, vocab.AdditionalType),
		Description:     Value(r, vocab.Description),
		Date:            optional(r, vocab.Date, TimeSpan),
		TransferredFrom: optional(r, vocab.TransferredFrom, Agent),
		TransferredTo:   optional(r, vocab.TransferredTo, Agent),
		Location:        optional(r, vocab.Location, Place),
		StartsAfter:     Value(r, vocab.StartsAfter),
		EndsBefore:      Value(r, vocab.EndsBefore),
	}
}

func provenanceType(r rdf.Resource) domain.ProvenanceEventType {
	switch {
	case HasType(r, vocab.Acquisition):
		return domain.ProvenanceAcquisition
	case HasType(r, vocab.TransferOfCustody):
		return domain.ProvenanceTransferOfCustody
	default:
		return ""
	}
}
