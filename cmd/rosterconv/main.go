// Command rosterconv converts an Excel roster into the JSON data file served
// by the student ages API. It runs offline; the API itself never writes the
// file.
//
// Expected workbook layout: first sheet, header row, column A = student name,
// column B = age.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/faresmergui/docker-student-stack/db"
)

func main() {
	in := flag.String("in", "", "path to the .xlsx roster (required)")
	out := flag.String("out", "data/student_age.json", "path of the JSON data file to write")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("Failed to open roster %s: %v", *in, err)
	}
	defer f.Close()

	doc, err := db.ImportRosterFromExcel(f)
	if err != nil {
		log.Fatalf("Failed to import roster: %v", err)
	}

	if err := db.WriteRosterFile(doc, *out); err != nil {
		log.Fatalf("Failed to write data file: %v", err)
	}
	log.Printf("Wrote %d student records to %s", len(doc.StudentAge), *out)
}
