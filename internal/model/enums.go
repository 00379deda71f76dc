package model

import "fmt"

// RecordStatus is the review state of a player registration or coach application
type RecordStatus string

const (
	StatusPending  RecordStatus = "pending"
	StatusAccepted RecordStatus = "accepted"
	StatusRejected RecordStatus = "rejected"
)

// RecordStatuses lists every record status in lifecycle order
var RecordStatuses = []RecordStatus{StatusPending, StatusAccepted, StatusRejected}

// Valid reports whether s is one of the known record statuses
func (s RecordStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// ParseRecordStatus converts a raw string into a RecordStatus
func ParseRecordStatus(raw string) (RecordStatus, error) {
	s := RecordStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// CollectionStatus is the operation bookkeeping marker of a collection
type CollectionStatus string

const (
	CollectionIdle    CollectionStatus = "idle"
	CollectionLoading CollectionStatus = "loading"
	CollectionError   CollectionStatus = "error"
)

// Position is a player's preferred position on the pitch
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// Positions lists every position in the order the registration form offers them
var Positions = []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}

// Valid reports whether p is one of the known positions
func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// Specialization is the coaching area a coach applies for
type Specialization string

const (
	SpecializationTechnical  Specialization = "Technical Coach"
	SpecializationTactical   Specialization = "Tactical Coach"
	SpecializationFitness    Specialization = "Fitness Coach"
	SpecializationGoalkeeper Specialization = "Goalkeeper Coach"
	SpecializationYouth      Specialization = "Youth Development"
)

// Specializations lists every specialization in form order
var Specializations = []Specialization{
	SpecializationTechnical,
	SpecializationTactical,
	SpecializationFitness,
	SpecializationGoalkeeper,
	SpecializationYouth,
}

// Valid reports whether s is one of the known specializations
func (s Specialization) Valid() bool {
	switch s {
	case SpecializationTechnical, SpecializationTactical, SpecializationFitness,
		SpecializationGoalkeeper, SpecializationYouth:
		return true
	}
	return false
}

// Certification is the highest coaching licence a coach holds
type Certification string

const (
	CertificationUEFAPro Certification = "UEFA Pro License"
	CertificationUEFAA   Certification = "UEFA A License"
	CertificationUEFAB   Certification = "UEFA B License"
	CertificationCAFA    Certification = "CAF A License"
	CertificationCAFB    Certification = "CAF B License"
	CertificationOther   Certification = "Other"
)

// Certifications lists every certification in form order
var Certifications = []Certification{
	CertificationUEFAPro,
	CertificationUEFAA,
	CertificationUEFAB,
	CertificationCAFA,
	CertificationCAFB,
	CertificationOther,
}

// Valid reports whether c is one of the known certifications
func (c Certification) Valid() bool {
	switch c {
	case CertificationUEFAPro, CertificationUEFAA, CertificationUEFAB,
		CertificationCAFA, CertificationCAFB, CertificationOther:
		return true
	}
	return false
}
