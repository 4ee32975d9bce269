package leopardweb

import "encoding/json"

// Term is an academic period as published by the registration system.
type Term struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Faculty is one instructor assignment on a course section.
type Faculty struct {
	BannerID    string `json:"bannerId,omitempty"`
	DisplayName string `json:"displayName"`
	Email       string `json:"emailAddress,omitempty"`
	Primary     bool   `json:"primaryIndicator,omitempty"`
}

// MeetingTime describes one scheduled meeting block of a section.
type MeetingTime struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`

	BeginTime           string `json:"beginTime"`
	EndTime             string `json:"endTime"`
	StartDate           string `json:"startDate,omitempty"`
	EndDate             string `json:"endDate,omitempty"`
	Building            string `json:"building"`
	BuildingDescription string `json:"buildingDescription"`
	Room                string `json:"room"`
	CampusDescription   string `json:"campusDescription,omitempty"`
	MeetingType         string `json:"meetingType,omitempty"`
}

// Meeting pairs a meeting time with the faculty attached to it, the
// way the remote service nests them under meetingsFaculty / fmt.
type Meeting struct {
	Category    string      `json:"category,omitempty"`
	MeetingTime MeetingTime `json:"meetingTime"`
	Faculty     []Faculty   `json:"faculty,omitempty"`
}

// Course is a single section row from the catalog listing. Field
// names follow the remote JSON so the raw dump round-trips the
// service's record shape.
type Course struct {
	CRN                 string  `json:"courseReferenceNumber"`
	Term                string  `json:"term,omitempty"`
	Subject             string  `json:"subject"`
	SubjectDescription  string  `json:"subjectDescription,omitempty"`
	CourseNumber        string  `json:"courseNumber"`
	SequenceNumber      string  `json:"sequenceNumber"`
	Title               string  `json:"courseTitle"`
	CreditHours         float64 `json:"creditHours"`
	ScheduleType        string  `json:"scheduleTypeDescription"`
	InstructionalMethod string  `json:"instructionalMethod"`
	CampusDescription   string  `json:"campusDescription"`

	Enrollment        int `json:"enrollment"`
	MaximumEnrollment int `json:"maximumEnrollment"`
	SeatsAvailable    int `json:"seatsAvailable"`
	WaitCount         int `json:"waitCount"`
	WaitCapacity      int `json:"waitCapacity"`

	Faculty  []Faculty `json:"faculty"`
	Meetings []Meeting `json:"meetingsFaculty"`

	// Raw is the record exactly as the listing returned it. The
	// typed fields above only cover what flattening and enrichment
	// read; the raw dump passes this through so no remote field is
	// lost.
	Raw json.RawMessage `json:"-"`
}

// Catalog is the complete listing for one term.
type Catalog struct {
	Term       string   `json:"term"`
	TotalCount int      `json:"total_count"`
	Courses    []Course `json:"courses"`
}

// searchEnvelope is the paginated listing response. Data stays raw
// so every record can be kept verbatim next to its typed decoding.
type searchEnvelope struct {
	Success    bool              `json:"success"`
	TotalCount int               `json:"totalCount"`
	Data       []json.RawMessage `json:"data"`
}

// meetingTimesEnvelope is the per-course detail response.
type meetingTimesEnvelope struct {
	Fmt []Meeting `json:"fmt"`
}
