package domain

import (
	"fmt"
	"strings"
	"time"
)

type SessionID string
type TurnID string
type CallID string

// Park identifies one of the four parks the assistant serves.
type Park string

const (
	ParkGronaLund       Park = "Gröna Lund"
	ParkFuruvik         Park = "Furuvik"
	ParkKolmarden       Park = "Kolmården"
	ParkSkaraSommarland Park = "Skara Sommarland"
)

// Code returns the internal park code used by the daily park data service.
func (p Park) Code() string {
	switch p {
	case ParkGronaLund:
		return "03"
	case ParkFuruvik:
		return "13"
	case ParkKolmarden:
		return "02"
	case ParkSkaraSommarland:
		return "05"
	default:
		return ""
	}
}

// ParsePark validates a free-form park name once, at the boundary.
func ParsePark(s string) (Park, error) {
	switch Park(strings.TrimSpace(s)) {
	case ParkGronaLund:
		return ParkGronaLund, nil
	case ParkFuruvik:
		return ParkFuruvik, nil
	case ParkKolmarden:
		return ParkKolmarden, nil
	case ParkSkaraSommarland:
		return ParkSkaraSommarland, nil
	}
	return "", fmt.Errorf("unknown park %q", s)
}

// EmploymentType distinguishes permanent from seasonal employees.
// The values match the eligibility flags in the knowledge base.
type EmploymentType string

const (
	EmploymentPermanent EmploymentType = "Tillsvidare"
	EmploymentSeasonal  EmploymentType = "Säsong/Visstid"
)

func ParseEmploymentType(s string) (EmploymentType, error) {
	switch EmploymentType(strings.TrimSpace(s)) {
	case EmploymentPermanent:
		return EmploymentPermanent, nil
	case EmploymentSeasonal:
		return EmploymentSeasonal, nil
	}
	return "", fmt.Errorf("unknown employment type %q", s)
}

// CertificateType is one of the two certificates an employee can request.
type CertificateType string

const (
	CertificateEmployer CertificateType = "Arbetsgivarintyg"
	CertificateService  CertificateType = "Tjänstgöringsintyg"
)

func ParseCertificateType(s string) (CertificateType, error) {
	switch CertificateType(strings.TrimSpace(s)) {
	case CertificateEmployer:
		return CertificateEmployer, nil
	case CertificateService:
		return CertificateService, nil
	}
	return "", fmt.Errorf("unknown certificate type %q", s)
}

type Timestamp = time.Time
