package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/planwiz/planwiz/internal/csvio"
	"github.com/planwiz/planwiz/internal/model"
)

var (
	catalogFile string
	courseList  string
	leaveDay    string
	preferences string
	exportFile  string
)

func main() {
	flag.StringVar(&catalogFile, "catalog", "", "path to the section catalog CSV")
	flag.StringVar(&courseList, "courses", "", "comma-separated course names to schedule")
	flag.StringVar(&leaveDay, "leave", "", "day to keep free of classes (Monday..Saturday)")
	flag.StringVar(&preferences, "prefer", "", "instructor preferences as Course=Instructor pairs, comma-separated")
	flag.StringVar(&exportFile, "export", "", "optional CSV file to export the timetable to")
	flag.Parse()

	if catalogFile == "" || courseList == "" {
		flag.Usage()
		log.Fatal("both -catalog and -courses are required")
	}

	catalog, err := csvio.LoadCatalog(catalogFile)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	request := model.Request{
		Courses:     splitList(courseList),
		Catalog:     catalog,
		Preferences: parsePreferences(preferences),
	}
	if leaveDay != "" {
		day, err := model.ParseDay(leaveDay)
		if err != nil {
			log.Fatalf("invalid leave day: %v", err)
		}
		request.LeaveDay = &day
	}

	result := model.NewScheduler().Solve(request)

	if result.Status == model.StatusConflict {
		fmt.Println("No valid timetable found.")
		for _, detail := range result.Conflicts {
			fmt.Printf("  - %s\n", detail.Message)
			if detail.ExampleClash != nil {
				fmt.Printf("    e.g. %s %s\n", detail.ExampleClash.Day, detail.ExampleClash.Time)
			}
		}
		fmt.Printf("Suggestion: %s\n", result.Suggestion)
		return
	}

	if result.Note != "" {
		fmt.Println(result.Note)
	}
	fmt.Printf("%-10s %-15s %-30s %-10s %s\n", "Day", "Time", "Course", "Slot", "Instructor")
	for _, placement := range result.Timetable {
		fmt.Printf("%-10s %s - %s %-30s %-10s %s\n",
			placement.Day, placement.Start, placement.End, placement.Course, placement.Venue, placement.Instructor)
	}

	if exportFile != "" {
		if err := csvio.ExportTimetable(exportFile, result.Timetable); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Timetable exported to %s\n", exportFile)
	}
}

func splitList(list string) []string {
	courses := []string{}
	for _, part := range strings.Split(list, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			courses = append(courses, trimmed)
		}
	}
	return courses
}

func parsePreferences(pairs string) map[string]string {
	parsed := map[string]string{}
	for _, pair := range splitList(pairs) {
		course, instructor, found := strings.Cut(pair, "=")
		if !found {
			log.Fatalf("invalid preference %q, expected Course=Instructor", pair)
		}
		parsed[strings.TrimSpace(course)] = strings.TrimSpace(instructor)
	}
	return parsed
}
