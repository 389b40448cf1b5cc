package constants

import "strings"

// Field is a canonical discharge-summary field label as emitted by the
// extraction service.
type Field string

const (
	AdmissionDate        Field = "Admission Date"
	DischargeDate        Field = "Discharge Date"
	PatientName          Field = "Patient Name"
	Age                  Field = "Age"
	Sex                  Field = "Sex"
	Diagnosis            Field = "Diagnosis"
	ChiefComplaints      Field = "Chief Complaints"
	HistoryOfIllness     Field = "History of Present Illness"
	PastMedicalHistory   Field = "Past Medical History"
	SurgicalHistory      Field = "Surgical History"
	HospitalCourse       Field = "Hospital Course"
	Investigations       Field = "Investigations"
	Procedures           Field = "Procedures"
	TreatmentGiven       Field = "Treatment Given"
	DischargeMedications Field = "Discharge Medications"
	DischargeCondition   Field = "Discharge Condition"
	FollowUpInstructions Field = "Follow-up Instructions"
	AdviceOnDischarge    Field = "Advice on Discharge"
	Doctor               Field = "Doctor"
)

var allFields = []Field{
	AdmissionDate,
	DischargeDate,
	PatientName,
	Age,
	Sex,
	Diagnosis,
	ChiefComplaints,
	HistoryOfIllness,
	PastMedicalHistory,
	SurgicalHistory,
	HospitalCourse,
	Investigations,
	Procedures,
	TreatmentGiven,
	DischargeMedications,
	DischargeCondition,
	FollowUpInstructions,
	AdviceOnDischarge,
	Doctor,
}

// AllFields returns the canonical labels in service output order.
func AllFields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

// ListFields are the fields whose values are bullet lists rather than prose.
var ListFields = map[Field]struct{}{
	TreatmentGiven:       {},
	DischargeMedications: {},
	Doctor:               {},
}

// CanonicalizeField matches a free-form label against the canonical set,
// ignoring case, surrounding whitespace and a trailing colon. The second
// return reports whether the label was recognized.
func CanonicalizeField(input string) (Field, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(input), ":")
	for _, f := range allFields {
		if strings.EqualFold(s, string(f)) {
			return f, true
		}
	}
	return "", false
}
