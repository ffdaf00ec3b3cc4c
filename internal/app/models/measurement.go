package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Measurement is a raw form submission as stored, keyed by the flattened
// path strings the form renderer produces. The submission itself is never
// interpreted at storage time; decoding happens on demand in formdata.
type Measurement struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	PatientID  string                 `bson:"patientId" json:"patient_id"`
	FormType   string                 `bson:"formType" json:"form_type"`
	Submission map[string]interface{} `bson:"submission" json:"submission"`
	CreatedAt  time.Time              `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time              `bson:"updatedAt" json:"updated_at"`
}

// DurationEntry is one slot of the hours/minutes/seconds triple the form
// emits for duration questions. Value is a numeric string or empty.
type DurationEntry struct {
	Unit  string `bson:"unit" json:"unit"`
	Value string `bson:"value" json:"value"`
}

type GlucoseRecord struct {
	Notes            string          `json:"notes"`
	MeasurementDate  string          `json:"measurement_date,omitempty"`
	MeasurementTime  string          `json:"measurement_time,omitempty"`
	GlucoseValue     *float64        `json:"glucose_value"`
	GlucoseUnit      string          `json:"glucose_unit,omitempty"`
	MealState        string          `json:"meal_state,omitempty"`
	MealCalories     *float64        `json:"meal_calories"`
	TimeSinceMeal    []DurationEntry `json:"time_since_meal,omitempty"`
	ExerciseDuration []DurationEntry `json:"exercise_duration,omitempty"`
	ExerciseCalories *float64        `json:"exercise_calories"`
	Weight           *float64        `json:"weight"`
	CreatedAt        time.Time       `json:"created_at,omitempty"`
}

type InsulinRecord struct {
	Notes           string    `json:"notes"`
	MeasurementDate string    `json:"measurement_date,omitempty"`
	MeasurementTime string    `json:"measurement_time,omitempty"`
	InsulinValue    *float64  `json:"insulin_value"`
	Route           string    `json:"route,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}
