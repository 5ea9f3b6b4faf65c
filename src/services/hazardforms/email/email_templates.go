package email

import (
	"bytes"
	_ "embed"
	"html/template"
	"sort"
	"strings"

	"Backend-HazardAssessment/src/models"
)

//go:embed hazard_form_email.html
var hazardFormHTML string

var hazardFormTmpl = template.Must(
	template.New("hazardForm").Parse(hazardFormHTML),
)

// HazardEntry จับคู่อันตรายกับมาตรการควบคุมของมัน
type HazardEntry struct {
	Name     string
	Controls []string
}

type hazardFormEmailData struct {
	Company        string
	JobDescription string
	Location       string
	Date           string

	ClientName                     string
	ClientEmergencyContact         string
	SupervisorName                 string
	RepresentativeCompany          string
	RepresentativeEmergencyContact string

	Hazards []HazardEntry
	PPE     string

	AdditionalHazards  string
	AdditionalControls string
	TailgateMeeting    string

	Representatives []string

	// Signature data URIs; template.URL keeps the sanitizer from
	// rewriting the data: scheme to #ZgotmplZ.
	WorkerSignature         template.URL
	ClientSignature         template.URL
	SupervisorSignature     template.URL
	ClientContactNumber     string
	SupervisorContactNumber string
	HasSignatures           bool
}

// hazardEntries lists every hazard in submission order with its controls,
// then appends controls keyed by hazards that were never listed. Those keys
// are sorted so the document is deterministic (map order is not).
func hazardEntries(record *models.HazardFormRecord) []HazardEntry {
	entries := make([]HazardEntry, 0, len(record.Hazards))
	listed := make(map[string]bool, len(record.Hazards))

	for _, hazard := range record.Hazards {
		entries = append(entries, HazardEntry{Name: hazard, Controls: record.HazardControls[hazard]})
		listed[hazard] = true
	}

	var extra []string
	for hazard := range record.HazardControls {
		if !listed[hazard] {
			extra = append(extra, hazard)
		}
	}
	sort.Strings(extra)
	for _, hazard := range extra {
		entries = append(entries, HazardEntry{Name: hazard, Controls: record.HazardControls[hazard]})
	}

	return entries
}

// RenderHazardFormHTML renders one persisted record into the notification
// document. Pure function of the record; every interpolated field is
// HTML-escaped by the template engine.
func RenderHazardFormHTML(record *models.HazardFormRecord) (string, error) {
	data := hazardFormEmailData{
		Company:        record.Company,
		JobDescription: record.JobDescription,
		Location:       record.Location,
		Date:           record.Date,

		ClientName:                     record.ClientName,
		ClientEmergencyContact:         record.ClientEmergencyContact,
		SupervisorName:                 record.SupervisorName,
		RepresentativeCompany:          record.RepresentativeCompany,
		RepresentativeEmergencyContact: record.RepresentativeEmergencyContact,

		Hazards: hazardEntries(record),
		PPE:     strings.Join(record.PPE, ", "),

		AdditionalHazards:  record.AdditionalHazards,
		AdditionalControls: record.AdditionalControls,
		TailgateMeeting:    record.TailgateMeeting,

		Representatives: record.Representatives,

		WorkerSignature:         template.URL(record.WorkerSignature),
		ClientSignature:         template.URL(record.ClientSignature),
		SupervisorSignature:     template.URL(record.SupervisorSignature),
		ClientContactNumber:     record.ClientContactNumber,
		SupervisorContactNumber: record.SupervisorContactNumber,
	}
	data.HasSignatures = record.WorkerSignature != "" || record.ClientSignature != "" || record.SupervisorSignature != ""

	var buf bytes.Buffer
	if err := hazardFormTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
