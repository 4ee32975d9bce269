package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"leopardweb-catalog/lib/scrapers/leopardweb"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func detailedCourse() leopardweb.Course {
	return leopardweb.Course{
		CRN:                 "12345",
		Subject:             "COMP",
		CourseNumber:        "2000",
		SequenceNumber:      "02",
		Title:               "Data Structures",
		CreditHours:         4,
		ScheduleType:        "Lecture",
		InstructionalMethod: "Traditional",
		CampusDescription:   "Boston",
		Enrollment:          25,
		MaximumEnrollment:   30,
		SeatsAvailable:      5,
		WaitCount:           2,
		WaitCapacity:        10,
		Faculty: []leopardweb.Faculty{
			{DisplayName: "Hopper, Grace"},
			{DisplayName: "Lovelace, Ada"},
		},
		Meetings: []leopardweb.Meeting{
			{
				MeetingTime: leopardweb.MeetingTime{
					Monday:              true,
					Wednesday:           true,
					Friday:              true,
					BeginTime:           "1000",
					EndTime:             "1050",
					Building:            "WENTW",
					BuildingDescription: "Wentworth Hall",
					Room:                "112",
				},
			},
			{
				MeetingTime: leopardweb.MeetingTime{
					Tuesday:   true,
					Thursday:  true,
					BeginTime: "1400",
					EndTime:   "1550",
					Building:  "ANNEX",
					Room:      "005",
				},
			},
		},
	}
}

// bareCourse is what a record looks like in quick mode or after a
// failed enrichment.
func bareCourse() leopardweb.Course {
	return leopardweb.Course{
		CRN:               "10001",
		Subject:           "MATH",
		CourseNumber:      "1500",
		SequenceNumber:    "01",
		Title:             "Calculus I",
		CreditHours:       4,
		ScheduleType:      "Lecture",
		CampusDescription: "Boston",
		Enrollment:        18,
		MaximumEnrollment: 35,
		SeatsAvailable:    17,
	}
}

func sampleCatalog() leopardweb.Catalog {
	return leopardweb.Catalog{
		Term:       "202510",
		TotalCount: 2,
		Courses:    []leopardweb.Course{detailedCourse(), bareCourse()},
	}
}

func TestFlatten(t *testing.T) {
	row := Flatten(detailedCourse())
	require.Len(t, row, len(Headers))

	require.Equal(t, "12345", row[0])
	require.Equal(t, "Hopper, Grace, Lovelace, Ada", row[8])
	require.Equal(t, "MWF, TT", row[9])
	require.Equal(t, "1000-1050, 1400-1550", row[10])
	require.Equal(t, "Wentworth Hall 112, ANNEX 005", row[11])
	require.Equal(t, "2", row[16])
	require.Equal(t, "10", row[17])
}

func TestFlattenBareCourse(t *testing.T) {
	row := Flatten(bareCourse())
	require.Len(t, row, len(Headers))

	// detail-backed columns are empty, the row still exists
	require.Equal(t, "10001", row[0])
	require.Equal(t, "", row[8])
	require.Equal(t, "", row[9])
	require.Equal(t, "", row[10])
	require.Equal(t, "", row[11])
}

func TestDefaultPath(t *testing.T) {
	require.Equal(t, "courses_202510.xlsx", DefaultPath("202510", FormatXLSX))
	require.Equal(t, "courses_202510.csv", DefaultPath("202510", FormatCSV))
	require.Equal(t, "courses_202510.json", DefaultPath("202510", FormatJSON))
}

func TestParseFormat(t *testing.T) {
	_, err := ParseFormat("tsv")
	require.Error(t, err)

	format, err := ParseFormat("csv")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, format)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.csv")
	err := Write(path, FormatCSV, sampleCatalog())
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, Headers, rows[0])
	// degraded record keeps its row
	require.Equal(t, "10001", rows[2][0])
	require.Equal(t, "", rows[2][9])
}

func TestWriteCSVDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, Write(a, FormatCSV, sampleCatalog()))
	require.NoError(t, Write(b, FormatCSV, sampleCatalog()))

	dataA, err := os.ReadFile(a)
	require.NoError(t, err)
	dataB, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, dataA, dataB)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	catalog := sampleCatalog()
	path := filepath.Join(t.TempDir(), "courses.json")
	err := Write(path, FormatJSON, catalog)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded leopardweb.Catalog
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(catalog, decoded); diff != "" {
		t.Fatalf("raw dump did not round-trip:\n%s", diff)
	}
}

func TestWriteJSONPassesRawRecordsThrough(t *testing.T) {
	course := bareCourse()
	course.Raw = json.RawMessage(`{"courseReferenceNumber":"10001","subject":"MATH","partOfTerm":"1","openSection":true}`)
	catalog := leopardweb.Catalog{Term: "202510", TotalCount: 1, Courses: []leopardweb.Course{course}}

	path := filepath.Join(t.TempDir(), "courses.json")
	require.NoError(t, Write(path, FormatJSON, catalog))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Term       string           `json:"term"`
		TotalCount int              `json:"total_count"`
		Courses    []map[string]any `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "202510", decoded.Term)
	require.Len(t, decoded.Courses, 1)

	// remote fields the typed view never declares survive untouched,
	// and nothing the remote never sent shows up
	require.Equal(t, "1", decoded.Courses[0]["partOfTerm"])
	require.Equal(t, true, decoded.Courses[0]["openSection"])
	require.NotContains(t, decoded.Courses[0], "courseNumber")
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.xlsx")
	err := Write(path, FormatXLSX, sampleCatalog())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Courses 202510")
	require.NoError(t, err)
	require.True(t, len(rows) >= 3)
	require.Equal(t, Headers, rows[0])
	require.Equal(t, "12345", rows[1][0])
}

func TestWriteUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "courses.csv")
	err := Write(path, FormatCSV, sampleCatalog())

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	require.Equal(t, path, exportErr.Path)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}
