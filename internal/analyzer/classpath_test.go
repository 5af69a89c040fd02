package analyzer

import (
	"reflect"
	"testing"
)

func TestParseClasspathOutput_FiltersLogLines(t *testing.T) {
	out := "[INFO] Building demo 1.0\n" +
		"[INFO] --- maven-dependency-plugin ---\n" +
		"/home/u/.m2/repository/junit/junit/4.13.2/junit-4.13.2.jar:/home/u/.m2/repository/org/slf4j/slf4j-api/2.0.9/slf4j-api-2.0.9.jar\n" +
		"[INFO] BUILD SUCCESS\n"

	got := parseClasspathOutput(out)
	want := []string{
		"/home/u/.m2/repository/junit/junit/4.13.2/junit-4.13.2.jar",
		"/home/u/.m2/repository/org/slf4j/slf4j-api/2.0.9/slf4j-api-2.0.9.jar",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseClasspathOutput = %v, want %v", got, want)
	}
}

func TestParseClasspathOutput_DeduplicatesAndSkipsNonJars(t *testing.T) {
	out := "/a/lib.jar:/a/lib.jar:/b/notes.txt.jar.bak\n"

	got := parseClasspathOutput(out)
	want := []string{"/a/lib.jar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseClasspathOutput = %v, want %v", got, want)
	}
}

func TestParseClasspathOutput_Empty(t *testing.T) {
	if got := parseClasspathOutput("[INFO] nothing here\n"); got != nil {
		t.Errorf("parseClasspathOutput = %v, want nil", got)
	}
}

func TestSplitClasspath_WindowsSeparator(t *testing.T) {
	got := splitClasspath(`C:\m2\a.jar;C:\m2\b.jar`)
	want := []string{`C:\m2\a.jar`, `C:\m2\b.jar`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitClasspath = %v, want %v", got, want)
	}
}
