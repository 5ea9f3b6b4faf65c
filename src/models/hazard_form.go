package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HazardFormSubmission ข้อมูลแบบฟอร์มประเมินอันตรายที่ส่งมาจาก client
type HazardFormSubmission struct {
	Company        string `bson:"company" json:"company" validate:"required"`
	Location       string `bson:"location" json:"location" validate:"required"`
	JobDescription string `bson:"jobDescription" json:"jobDescription" validate:"required"`
	Date           string `bson:"date" json:"date" validate:"required"`

	// Hazards and PPE
	Hazards            []string            `bson:"hazards" json:"hazards"`
	HazardControls     map[string][]string `bson:"hazardControls" json:"hazardControls"`
	PPE                []string            `bson:"ppe" json:"ppe"`
	AdditionalHazards  string              `bson:"additionalHazards" json:"additionalHazards"`
	AdditionalControls string              `bson:"additionalControls" json:"additionalControls"`

	// Meeting and representatives
	TailgateMeeting string   `bson:"tailgateMeeting" json:"tailgateMeeting"`
	Representatives []string `bson:"representatives" json:"representatives"`

	// Representative company + emergency contacts
	RepresentativeCompany          string `bson:"representativeCompany" json:"representativeCompany"`
	RepresentativeEmergencyContact string `bson:"representativeEmergencyContact" json:"representativeEmergencyContact"`
	ClientEmergencyContact         string `bson:"clientEmergencyContact" json:"clientEmergencyContact"`

	// Signatures and names (signatures are inline data URIs, stored as-is)
	WorkerSignature         string `bson:"workerSignature" json:"workerSignature"`
	ClientName              string `bson:"clientName" json:"clientName"`
	ClientSignature         string `bson:"clientSignature" json:"clientSignature"`
	ClientContactNumber     string `bson:"clientContactNumber" json:"clientContactNumber"`
	SupervisorName          string `bson:"supervisorName" json:"supervisorName"`
	SupervisorSignature     string `bson:"supervisorSignature" json:"supervisorSignature"`
	SupervisorContactNumber string `bson:"supervisorContactNumber" json:"supervisorContactNumber"`
}

// Normalize ตั้งค่า default ให้ field ที่ไม่ได้ส่งมา
// Absent lists/maps become empty so Mongo stores [] / {} instead of null.
func (s *HazardFormSubmission) Normalize() {
	if s.Hazards == nil {
		s.Hazards = []string{}
	}
	if s.HazardControls == nil {
		s.HazardControls = map[string][]string{}
	}
	if s.PPE == nil {
		s.PPE = []string{}
	}
	if s.Representatives == nil {
		s.Representatives = []string{}
	}
}

// HazardFormRecord แบบฟอร์มที่บันทึกลงฐานข้อมูลแล้ว
// FormNumber is assigned once at intake and never changes.
type HazardFormRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormNumber string             `bson:"formNumber" json:"formNumber"`

	HazardFormSubmission `bson:",inline"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
