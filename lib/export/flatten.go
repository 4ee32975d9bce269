package export

import (
	"strconv"
	"strings"

	"leopardweb-catalog/lib/scrapers/leopardweb"
)

// Headers is the fixed column set of the tabular and delimited
// formats. Order never varies with record content.
var Headers = []string{
	"CRN",
	"Subject",
	"Course Number",
	"Section",
	"Title",
	"Credit Hours",
	"Schedule Type",
	"Instructional Method",
	"Faculty",
	"Meeting Days",
	"Meeting Times",
	"Location",
	"Campus",
	"Enrollment Current",
	"Enrollment Max",
	"Seats Available",
	"Waitlist Current",
	"Waitlist Max",
}

var dayLetters = []struct {
	letter string
	active func(mt leopardweb.MeetingTime) bool
}{
	{"M", func(mt leopardweb.MeetingTime) bool { return mt.Monday }},
	{"T", func(mt leopardweb.MeetingTime) bool { return mt.Tuesday }},
	{"W", func(mt leopardweb.MeetingTime) bool { return mt.Wednesday }},
	{"T", func(mt leopardweb.MeetingTime) bool { return mt.Thursday }},
	{"F", func(mt leopardweb.MeetingTime) bool { return mt.Friday }},
	{"S", func(mt leopardweb.MeetingTime) bool { return mt.Saturday }},
	{"S", func(mt leopardweb.MeetingTime) bool { return mt.Sunday }},
}

func formatCredits(hours float64) string {
	if hours == 0 {
		return ""
	}
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

// Flatten collapses one course into the fixed column set. Courses
// without meeting or faculty detail (quick mode, failed enrichment)
// still produce a row, just with empty cells.
func Flatten(course leopardweb.Course) []string {
	var faculty []string
	for _, f := range course.Faculty {
		if f.DisplayName != "" {
			faculty = append(faculty, f.DisplayName)
		}
	}

	var days, times, locations []string
	for _, meeting := range course.Meetings {
		mt := meeting.MeetingTime

		pattern := ""
		for _, day := range dayLetters {
			if day.active(mt) {
				pattern += day.letter
			}
		}
		if pattern != "" {
			days = append(days, pattern)
		}

		if mt.BeginTime != "" && mt.EndTime != "" {
			times = append(times, mt.BeginTime+"-"+mt.EndTime)
		}

		location := mt.BuildingDescription
		if location == "" {
			location = mt.Building
		}
		if mt.Room != "" {
			location = strings.TrimSpace(location + " " + mt.Room)
		}
		if location != "" {
			locations = append(locations, location)
		}
	}

	return []string{
		course.CRN,
		course.Subject,
		course.CourseNumber,
		course.SequenceNumber,
		course.Title,
		formatCredits(course.CreditHours),
		course.ScheduleType,
		course.InstructionalMethod,
		strings.Join(faculty, ", "),
		strings.Join(days, ", "),
		strings.Join(times, ", "),
		strings.Join(locations, ", "),
		course.CampusDescription,
		strconv.Itoa(course.Enrollment),
		strconv.Itoa(course.MaximumEnrollment),
		strconv.Itoa(course.SeatsAvailable),
		strconv.Itoa(course.WaitCount),
		strconv.Itoa(course.WaitCapacity),
	}
}
