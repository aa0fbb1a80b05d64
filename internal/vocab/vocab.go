// Package vocab names the ontology terms read from the triple store and the
// internal terms that graph queries construct for the projectors.
package vocab

import (
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
)

// Namespaces.
const (
	RDF    = rdf.NS
	RDFS   = rdfs.NS
	OWL    = "http://www.w3.org/2002/07/owl#"
	XSD    = "http://www.w3.org/2001/XMLSchema#"
	CRM    = "http://www.cidoc-crm.org/cidoc-crm/"
	Schema = "https://schema.org/"
	EX     = "https://example.org/"
)

// Shared terms.
const (
	RDFType     = RDF + "type"
	RDFSLabel   = RDFS + "label"
	RDFSSeeAlso = RDFS + "seeAlso"
	OWLSameAs   = OWL + "sameAs"
	XSDDateTime = XSD + "dateTime"
)

// CIDOC-CRM classes and properties.
const (
	CRMHumanMadeObject      = CRM + "E22_Human-Made_Object"
	CRMPerson               = CRM + "E21_Person"
	CRMGroup                = CRM + "E74_Group"
	CRMPlace                = CRM + "E53_Place"
	CRMTimeSpan             = CRM + "E52_Time-Span"
	CRMAcquisition          = CRM + "E8_Acquisition"
	CRMTransferOfCustody    = CRM + "E10_Transfer_of_Custody"
	CRMIdentifier           = CRM + "E42_Identifier"
	CRMLinguisticObject     = CRM + "E33_Linguistic_Object"
	CRMIsIdentifiedBy       = CRM + "P1_is_identified_by"
	CRMHasNote              = CRM + "P3_has_note"
	CRMHasTimeSpan          = CRM + "P4_has_time-span"
	CRMTookPlaceAt          = CRM + "P7_took_place_at"
	CRMCarriedOutBy         = CRM + "P14_carried_out_by"
	CRMHasType              = CRM + "P2_has_type"
	CRMHasFormerOrCurrent   = CRM + "P51_has_former_or_current_owner"
	CRMHasCurrentOwner      = CRM + "P52_has_current_owner"
	CRMCarries              = CRM + "P128_carries"
	CRMHasRepresentation    = CRM + "P138i_has_representation"
	CRMMemberOf             = CRM + "P107i_is_current_or_former_member_of"
	CRMShows                = CRM + "P65_shows_visual_item"
	CRMIsAbout              = CRM + "P129_is_about"
	CRMHasContent           = CRM + "P190_has_symbolic_content"
	CRMConsistsOf           = CRM + "P45_consists_of"
	CRMWasProducedBy        = CRM + "P108i_was_produced_by"
	CRMUsedGeneralTechnique = CRM + "P32_used_general_technique"
	CRMFallsWithin          = CRM + "P89_falls_within"
	CRMBeginOfTheBegin      = CRM + "P82a_begin_of_the_begin"
	CRMEndOfTheEnd          = CRM + "P82b_end_of_the_end"
	CRMWasBorn              = CRM + "P98i_was_born"
	CRMDied                 = CRM + "P100i_died_in"
	CRMTransferredTitleOf   = CRM + "P24_transferred_title_of"
	CRMTransferredTitleFrom = CRM + "P23_transferred_title_from"
	CRMTransferredTitleTo   = CRM + "P22_transferred_title_to"
	CRMTransferredCustodyOf = CRM + "P30_transferred_custody_of"
	CRMCustodyFrom          = CRM + "P28_custody_surrendered_by"
	CRMCustodyTo            = CRM + "P29_custody_received_by"
	CRMStartsAfterEndOf     = CRM + "P183i_starts_after_the_end_of"
	CRMEndsBeforeStartOf    = CRM + "P183_ends_before_the_start_of"
)

// schema.org classes and properties.
const (
	SchemaCreativeWork     = Schema + "CreativeWork"
	SchemaDataset          = Schema + "Dataset"
	SchemaPerson           = Schema + "Person"
	SchemaOrganization     = Schema + "Organization"
	SchemaPlace            = Schema + "Place"
	SchemaCitation         = Schema + "citation"
	SchemaName             = Schema + "name"
	SchemaAlternateName    = Schema + "alternateName"
	SchemaDescription      = Schema + "description"
	SchemaAbstract         = Schema + "abstract"
	SchemaText             = Schema + "text"
	SchemaEncodingFormat   = Schema + "encodingFormat"
	SchemaKeywords         = Schema + "keywords"
	SchemaContentLocation  = Schema + "contentLocation"
	SchemaContainedInPlace = Schema + "containedInPlace"
	SchemaHasPart          = Schema + "hasPart"
	SchemaIsPartOf         = Schema + "isPartOf"
	SchemaURL              = Schema + "url"
	SchemaPublisher        = Schema + "publisher"
	SchemaLicense          = Schema + "license"
	SchemaDateCreated      = Schema + "dateCreated"
	SchemaDateModified     = Schema + "dateModified"
	SchemaDatePublished    = Schema + "datePublished"
	SchemaContentURL       = Schema + "contentUrl"
	SchemaSameAs           = Schema + "sameAs"
)

// Internal classes emitted by the CONSTRUCT templates.
const (
	HeritageObject    = EX + "HeritageObject"
	Person            = EX + "Person"
	Organization      = EX + "Organization"
	Dataset           = EX + "Dataset"
	ProvenanceEvent   = EX + "ProvenanceEvent"
	Acquisition       = EX + "Acquisition"
	TransferOfCustody = EX + "TransferOfCustody"
	ResearchGuide     = EX + "ResearchGuide"
)

// Internal properties emitted by the CONSTRUCT templates.
const (
	Name            = EX + "name"
	AlternateName   = EX + "alternateName"
	Description     = EX + "description"
	SameAs          = EX + "sameAs"
	Identifier      = EX + "identifier"
	Inscription     = EX + "inscription"
	AdditionalType  = EX + "additionalType"
	Subject         = EX + "subject"
	Material        = EX + "material"
	Technique       = EX + "technique"
	Creator         = EX + "creator"
	DateCreated     = EX + "dateCreated"
	DateModified    = EX + "dateModified"
	DatePublished   = EX + "datePublished"
	LocationCreated = EX + "locationCreated"
	Image           = EX + "image"
	ContentURL      = EX + "contentUrl"
	License         = EX + "license"
	Owner           = EX + "owner"
	IsPartOf        = EX + "isPartOf"
	Publisher       = EX + "publisher"
	Keyword         = EX + "keyword"
	Nationality     = EX + "nationality"
	BirthPlace      = EX + "birthPlace"
	DateOfBirth     = EX + "dateOfBirth"
	DeathPlace      = EX + "deathPlace"
	DateOfDeath     = EX + "dateOfDeath"
	StartDate       = EX + "startDate"
	EndDate         = EX + "endDate"
	Date            = EX + "date"
	TransferredFrom = EX + "transferredFrom"
	TransferredTo   = EX + "transferredTo"
	Location        = EX + "location"
	StartsAfter     = EX + "startsAfter"
	EndsBefore      = EX + "endsBefore"
	Abstract        = EX + "abstract"
	Text            = EX + "text"
	EncodingFormat  = EX + "encodingFormat"
	ContentLocation = EX + "contentLocation"
	Citation        = EX + "citation"
	URL             = EX + "url"
	HasPart         = EX + "hasPart"
	SeeAlso         = EX + "seeAlso"
)
