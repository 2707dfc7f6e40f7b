package models

// Draft is a loosely typed record as it arrives from form controls or a
// JSON body: values may be strings, numbers, booleans or nil. Drafts never
// reach persistence directly; the sanitizer is the only conversion boundary
// between a Draft and a SymptomRecord.
type Draft map[string]any

// SymptomRecord is one logged episode in canonical form: every string
// field holds a string (empty means unset), every rating/count field is
// either a valid integer or null, and ecg_taken is a genuine boolean.
type SymptomRecord struct {
	ID       int64  `json:"id,omitempty"`
	UserName string `json:"user_name"`
	Date     string `json:"date"`
	Time     string `json:"time"`

	Activity              string `json:"activity"`
	BodyPart              string `json:"body_part"`
	Intake                string `json:"intake"`
	StartFeeling          string `json:"start_feeling"`
	StartType             string `json:"start_type"`
	Premonition           string `json:"premonition"`
	Sweating              string `json:"sweating"`
	Weakness              string `json:"weakness"`
	ChestPain             string `json:"chest_pain"`
	BloodPressure         string `json:"blood_pressure"`
	BloodSugar            string `json:"blood_sugar"`
	AfterEffects          string `json:"after_effects"`
	RecoveryBloodPressure string `json:"recovery_blood_pressure"`
	RecoveryActions       string `json:"recovery_actions"`
	RecoveryHelpful       string `json:"recovery_helpful"`
	SleepHours            string `json:"sleep_hours"`
	Stress                string `json:"stress"`
	Medications           string `json:"medications"`
	Notes                 string `json:"notes"`

	HeartRate         *int `json:"heart_rate"`
	Breathing         *int `json:"breathing"`
	Dizziness         *int `json:"dizziness"`
	SpeechDifficulty  *int `json:"speech_difficulty"`
	MeasuredHeartRate *int `json:"measured_heart_rate"`
	Duration          *int `json:"duration"`
	RecoveryHeartRate *int `json:"recovery_heart_rate"`

	ECGTaken bool `json:"ecg_taken"`

	CreatedAt string `json:"created_at,omitempty"`
}
