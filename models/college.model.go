package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CollegeCourseOverview struct {
	Fees           float64 `json:"fees,omitempty"`
	SatRange       string  `json:"satRange,omitempty"`
	AcceptanceRate float64 `json:"acceptanceRate,omitempty"`
	Location       string  `json:"location,omitempty"`
	Website        string  `json:"website,omitempty"`
	ActRange       string  `json:"actRange,omitempty"`
}

type CollegeCourseCost struct {
	InStateCost            float64 `json:"inStateCost,omitempty"`
	OutStateCost           float64 `json:"outStateCost,omitempty"`
	InStateTuitionFee      float64 `json:"inStateTuitionFee,omitempty"`
	RoomAndBoard           float64 `json:"roomAndBoard,omitempty"`
	AverageTotalAidAwarded float64 `json:"averageTotalAidAwarded,omitempty"`
	GraduateAwardedLoan    float64 `json:"graduateAwardedLoan,omitempty"`
}

type CollegeCourseAcademics struct {
	StudentFacultyRatio string   `json:"studentFacultyRatio,omitempty"`
	AcademicCalendar    string   `json:"academicCalendar,omitempty"`
	PopularCourses      []string `json:"popularCourses,omitempty"`
}

type CollegeCourseStudents struct {
	FullTimeEnrollment    float64 `json:"fullTimeEnrollment,omitempty"`
	AdmissionPolicy       string  `json:"admissionPolicy,omitempty"`
	InternationalStudents float64 `json:"internationalStudents,omitempty"`
	RetentionRate         float64 `json:"retentionRate,omitempty"`
}

// CollegeCourse is a program offered by a college, embedded in the
// college record.
type CollegeCourse struct {
	Name               string                 `json:"name"`
	Overview           CollegeCourseOverview  `json:"overview,omitempty"`
	CostAndScholarship CollegeCourseCost      `json:"costAndScholarship,omitempty"`
	Application        []string               `json:"application,omitempty"`
	Academics          CollegeCourseAcademics `json:"academics,omitempty"`
	Students           CollegeCourseStudents  `json:"students,omitempty"`
}

type College struct {
	ID   ObjectID `json:"id" gorm:"primaryKey;size:24"`
	Name string   `json:"name" gorm:"not null"`

	Address datatypes.JSONMap                 `json:"address"` // free-form address document
	Gallery datatypes.JSONSlice[string]       `json:"gallery"`
	Logo    string                            `json:"logo"`
	Courses datatypes.JSONSlice[CollegeCourse] `json:"courses"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *College) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewObjectID()
	}
	return nil
}
